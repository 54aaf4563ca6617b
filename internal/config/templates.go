package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/talgya/statecraft/internal/resource"
	"github.com/talgya/statecraft/internal/world"
)

// Transform template files use a Lisp-style syntax:
//
//	(TRANSFORM country
//	    (INPUTS (Timber 5) (MetallicElements 1))
//	    (OUTPUTS (Housing 1) (HousingWaste 1)))
//
// A file may hold any number of templates. The template's display name is
// derived from its first primary output: the first OUTPUTS entry that is not
// Population and not a *Waste by-product.

// node is one s-expression element: a string atom, a float64 atom, or a
// nested []node list.
type node any

// LoadTemplates parses every TRANSFORM form from the file, returned sorted
// by name so enumeration order is stable across runs.
func LoadTemplates(path string) ([]*world.TransformTemplate, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open templates file: %w", err)
	}
	templates, err := ParseTemplates(string(text))
	if err != nil {
		return nil, fmt.Errorf("templates file %s: %w", path, err)
	}
	return templates, nil
}

// ParseTemplates parses TRANSFORM forms from source text.
func ParseTemplates(text string) ([]*world.TransformTemplate, error) {
	forms, err := parseSexprs(text)
	if err != nil {
		return nil, err
	}

	// Later definitions of a name replace earlier ones.
	byName := make(map[string]*world.TransformTemplate)
	for _, form := range forms {
		list, ok := form.([]node)
		if !ok || len(list) == 0 {
			continue
		}
		head, ok := list[0].(string)
		if !ok || !strings.EqualFold(head, "TRANSFORM") {
			continue
		}
		tpl, err := templateFromForm(list)
		if err != nil {
			return nil, err
		}
		byName[tpl.Name] = tpl
	}

	templates := make([]*world.TransformTemplate, 0, len(byName))
	for _, tpl := range byName {
		templates = append(templates, tpl)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func templateFromForm(form []node) (*world.TransformTemplate, error) {
	if len(form) < 4 {
		return nil, fmt.Errorf("TRANSFORM form needs a country and INPUTS/OUTPUTS sections")
	}

	inputs := resource.Bundle{}
	outputs := resource.Bundle{}
	var outputOrder []string

	for _, section := range form[2:] {
		list, ok := section.([]node)
		if !ok || len(list) < 2 {
			continue
		}
		header, ok := list[0].(string)
		if !ok {
			continue
		}
		for _, ent := range list[1:] {
			pair, ok := ent.([]node)
			if !ok || len(pair) != 2 {
				continue
			}
			name, ok := pair[0].(string)
			if !ok {
				return nil, fmt.Errorf("resource name %v is not a symbol", pair[0])
			}
			qty, ok := pair[1].(float64)
			if !ok {
				return nil, fmt.Errorf("quantity for %s is not a number: %v", name, pair[1])
			}
			switch strings.ToUpper(header) {
			case "INPUTS":
				inputs[name] = qty
			case "OUTPUTS":
				outputs[name] = qty
				outputOrder = append(outputOrder, name)
			}
		}
	}

	// Name the template after its first primary output.
	name := ""
	for _, out := range outputOrder {
		if out != "Population" && !strings.HasSuffix(out, "Waste") {
			name = out
			break
		}
	}
	if name == "" {
		if s, ok := form[1].(string); ok {
			name = s
		} else if len(outputOrder) > 0 {
			name = outputOrder[0]
		} else {
			name = "TRANSFORM"
		}
	}

	return &world.TransformTemplate{Name: name, Inputs: inputs, Outputs: outputs}, nil
}

// parseSexprs tokenizes and parses a whole document into top-level forms.
func parseSexprs(text string) ([]node, error) {
	tokens := tokenize(text)
	var forms []node
	pos := 0
	for pos < len(tokens) {
		form, next, err := parseTokens(tokens, pos)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
		pos = next
	}
	return forms, nil
}

func tokenize(text string) []string {
	spaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(text)
	return strings.Fields(spaced)
}

func parseTokens(tokens []string, pos int) (node, int, error) {
	if pos >= len(tokens) {
		return nil, pos, fmt.Errorf("unexpected end of template text")
	}
	switch tok := tokens[pos]; tok {
	case "(":
		var list []node
		pos++
		for pos < len(tokens) && tokens[pos] != ")" {
			child, next, err := parseTokens(tokens, pos)
			if err != nil {
				return nil, pos, err
			}
			list = append(list, child)
			pos = next
		}
		if pos >= len(tokens) {
			return nil, pos, fmt.Errorf("missing closing parenthesis")
		}
		return list, pos + 1, nil
	case ")":
		return nil, pos, fmt.Errorf("unexpected closing parenthesis at token %d", pos)
	default:
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return v, pos + 1, nil
		}
		return tok, pos + 1, nil
	}
}
