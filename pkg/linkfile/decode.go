package linkfile

import (
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Declaration is one top-level key/value pair of a linkfile, in document
// order. Value is whatever the TOML decoder produced for the key.
type Declaration struct {
	Key   string
	Value interface{}
}

// Decode parses a linkfile and returns its top-level declarations in the
// order they appear. Keys declared inside [tables] or as dotted keys are
// returned once, with their table as the value.
func Decode(data []byte) ([]Declaration, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid TOML")
	}

	decls := make([]Declaration, 0, len(doc))
	seen := make(map[string]bool, len(doc))
	add := func(key string) {
		if seen[key] {
			return
		}
		seen[key] = true
		decls = append(decls, Declaration{Key: key, Value: doc[key]})
	}

	p := unstable.Parser{}
	p.Reset(data)
	inTable := false
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.KeyValue:
			// pairs after a table header belong to that table
			if inTable {
				continue
			}
		case unstable.Table, unstable.ArrayTable:
			inTable = true
		default:
			continue
		}
		if key, ok := firstKey(expr); ok {
			add(key)
		}
	}
	if err := p.Error(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid TOML")
	}

	return decls, nil
}

func firstKey(expr *unstable.Node) (string, bool) {
	it := expr.Key()
	if !it.Next() {
		return "", false
	}
	return string(it.Node().Data), true
}
