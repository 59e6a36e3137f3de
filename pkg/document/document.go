package document

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hypertext-dev/hypertext/el"
	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/markdown"
	"github.com/hypertext-dev/hypertext/pkg/render"
)

// Mapping keys understood by the decoder.
const (
	keyTag      = "tag"
	keyAttrs    = "attrs"
	keyChildren = "children"
	keyVoid     = "void"
	keyText     = "text"
	keyRaw      = "raw"
	keyMarkdown = "markdown"
	keyDoctype  = "doctype"
)

// Parse decodes a YAML page description.
func Parse(data []byte) (render.Renderable, error) {
	return parse("", data)
}

// ParseFile reads and decodes the YAML page description at path. Errors
// point at the offending line of the file.
func ParseFile(path string) (render.Renderable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("H030").WithDetail(path).Wrap(err)
	}
	return parse(path, data)
}

func parse(file string, data []byte) (render.Renderable, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		e := errors.New("H010").Wrap(err)
		if file != "" {
			e.Location = &errors.Location{File: file}
		}
		return nil, e
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return render.Empty{}, nil
	}
	d := &decoder{file: file, data: data}
	return d.node(root.Content[0])
}

type decoder struct {
	file string
	data []byte
}

// fail builds a coded error located at n.
func (d *decoder) fail(code string, n *yaml.Node, detail string) *errors.Error {
	e := errors.New(code).WithDetail(detail)
	if d.file != "" {
		return e.WithLocation(d.file, n.Line, n.Column)
	}
	e.Location = &errors.Location{Line: n.Line, Column: n.Column}
	return e.WithContext(errors.SourceLines(d.data, n.Line, 3))
}

func (d *decoder) node(n *yaml.Node) (render.Renderable, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return d.node(n.Alias)
	case yaml.ScalarNode:
		return d.scalar(n)
	case yaml.SequenceNode:
		return d.sequence(n)
	case yaml.MappingNode:
		return d.mapping(n)
	default:
		return nil, d.fail("H011", n, "unsupported YAML node")
	}
}

func (d *decoder) scalar(n *yaml.Node) (render.Renderable, error) {
	switch n.ShortTag() {
	case "!!null":
		return render.Empty{}, nil
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return render.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return render.Uint(u), nil
		}
		return render.Text(n.Value), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, d.fail("H010", n, "invalid number "+strconv.Quote(n.Value))
		}
		return render.Float(f), nil
	default:
		return render.Text(n.Value), nil
	}
}

func (d *decoder) sequence(n *yaml.Node) (render.Renderable, error) {
	f := make(render.Fragment, 0, len(n.Content))
	for _, item := range n.Content {
		r, err := d.node(item)
		if err != nil {
			return nil, err
		}
		f = append(f, r)
	}
	return f, nil
}

// fields returns the entries of a mapping keyed by name, rejecting unknown
// and duplicate keys.
func (d *decoder) fields(n *yaml.Node) (map[string]*yaml.Node, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case keyTag, keyAttrs, keyChildren, keyVoid, keyText, keyRaw, keyMarkdown, keyDoctype:
		default:
			return nil, d.fail("H011", k, "unknown key "+strconv.Quote(k.Value))
		}
		if _, dup := fields[k.Value]; dup {
			return nil, d.fail("H011", k, "duplicate key "+strconv.Quote(k.Value))
		}
		fields[k.Value] = v
	}
	return fields, nil
}

func (d *decoder) mapping(n *yaml.Node) (render.Renderable, error) {
	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}

	if _, ok := fields[keyTag]; ok {
		return d.element(n, fields)
	}

	if len(fields) != 1 {
		return nil, d.fail("H011", n, "a node must have a tag or exactly one of text, raw, markdown, doctype")
	}

	for key, v := range fields {
		switch key {
		case keyText, keyRaw, keyMarkdown:
			if v.Kind != yaml.ScalarNode {
				return nil, d.fail("H011", v, key+" must be a string")
			}
			switch key {
			case keyText:
				return render.Text(v.Value), nil
			case keyRaw:
				return render.Raw(v.Value), nil
			default:
				return markdown.New(v.Value), nil
			}
		case keyDoctype:
			ok, err := d.boolean(v)
			if err != nil {
				return nil, err
			}
			if !ok {
				return render.Empty{}, nil
			}
			return render.Doctype(), nil
		}
	}
	return nil, d.fail("H011", n, "attrs, children and void require a tag")
}

func (d *decoder) element(n *yaml.Node, fields map[string]*yaml.Node) (render.Renderable, error) {
	for _, key := range []string{keyText, keyRaw, keyMarkdown, keyDoctype} {
		if v, ok := fields[key]; ok {
			return nil, d.fail("H011", v, key+" cannot be combined with tag")
		}
	}

	tagNode := fields[keyTag]
	if tagNode.Kind != yaml.ScalarNode || tagNode.Value == "" {
		return nil, d.fail("H010", tagNode, "tag must be a non-empty string")
	}

	_, hasChildren := fields[keyChildren]
	void := el.IsVoidElement(tagNode.Value) && !hasChildren
	if v, ok := fields[keyVoid]; ok {
		var err error
		if void, err = d.boolean(v); err != nil {
			return nil, err
		}
	}

	var elem *render.Element
	if void {
		if c, ok := fields[keyChildren]; ok {
			return nil, d.fail("H010", c, "void elements cannot have children")
		}
		elem = render.NewSelfClosing(tagNode.Value)
	} else if c, ok := fields[keyChildren]; ok {
		child, err := d.node(c)
		if err != nil {
			return nil, err
		}
		elem = render.NewElement(tagNode.Value, child)
	} else {
		elem = render.NewElement(tagNode.Value)
	}

	if a, ok := fields[keyAttrs]; ok {
		if err := d.attrs(elem, a); err != nil {
			return nil, err
		}
	}
	return elem, nil
}

func (d *decoder) attrs(elem *render.Element, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := d.attr(elem, n.Content[i], n.Content[i+1]); err != nil {
				return err
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
				return d.fail("H012", item, "attribute list entries must be single-entry mappings")
			}
			if err := d.attr(elem, item.Content[0], item.Content[1]); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
	}
	return d.fail("H012", n, "attrs must be a mapping or a list of mappings")
}

func (d *decoder) attr(elem *render.Element, k, v *yaml.Node) error {
	if k.Kind != yaml.ScalarNode || k.Value == "" {
		return d.fail("H012", k, "attribute names must be non-empty strings")
	}
	if v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	if v.Kind != yaml.ScalarNode {
		return d.fail("H012", v, "value of "+strconv.Quote(k.Value)+" must be a scalar")
	}

	switch v.ShortTag() {
	case "!!null":
	case "!!bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return d.fail("H012", v, err.Error())
		}
		if b {
			elem.BoolAttr(k.Value)
		}
	default:
		elem.Attr(k.Value, v.Value)
	}
	return nil
}

func (d *decoder) boolean(n *yaml.Node) (bool, error) {
	var b bool
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		return false, d.fail("H010", n, "expected true or false")
	}
	if err := n.Decode(&b); err != nil {
		return false, d.fail("H010", n, err.Error())
	}
	return b, nil
}
