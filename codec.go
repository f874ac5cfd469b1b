package translate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog file does not hold a tree of strings.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ReadCatalog decodes a JSON or YAML catalog, keeping the order keys are declared in.
// An empty document is an empty catalog and null values are empty translations.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		c, err := readJSON(trimmed)

		// YAML flow mappings start with a brace too.
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			if c, yamlErr := readYAML(data); yamlErr == nil {
				return c, nil
			}
		}

		return c, err
	}

	return readYAML(data)
}

func readYAML(data []byte) (*Catalog, error) {
	var doc yaml.Node

	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}

	return catalogFromNode(&doc, "")
}

// readJSON walks the tokens of a JSON object so segments keep their order.
// Unlike YAML it accepts every JSON escape, including surrogate pairs and "\/".
func readJSON(data []byte) (*Catalog, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}

	c, err := jsonObject(decoder, "")
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("data after the root object")
		}

		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}

	return c, nil
}

// jsonObject reads the members of an object whose opening brace was consumed, up to and including its closing brace.
func jsonObject(decoder *json.Decoder, path string) (*Catalog, error) {
	c := NewCatalog()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("unable to decode catalog: %w", err)
		}

		segment, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unable to decode catalog: unexpected %v in %s", token, describe(path))
		}

		key := segment
		if path != "" {
			key = path + "." + segment
		}

		token, err = decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("unable to decode catalog: %w", err)
		}

		switch value := token.(type) {
		case string:
			c.put(segment, &Node{Value: value})
		case nil:
			c.put(segment, &Node{})
		case json.Delim:
			if value != '{' {
				return nil, fmt.Errorf("%w: %s must be a string or a mapping (offset %d)", ErrInvalidCatalog, describe(key), decoder.InputOffset())
			}

			child, err := jsonObject(decoder, key)
			if err != nil {
				return nil, err
			}

			c.put(segment, &Node{Children: child})
		default:
			return nil, fmt.Errorf("%w: %s must be a string or a mapping (offset %d)", ErrInvalidCatalog, describe(key), decoder.InputOffset())
		}
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}

	return c, nil
}

func catalogFromNode(node *yaml.Node, path string) (*Catalog, error) {
	node = resolve(node)

	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return NewCatalog(), nil
		}

		return catalogFromNode(node.Content[0], path)
	}

	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return NewCatalog(), nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s must be a mapping (line %d)", ErrInvalidCatalog, describe(path), node.Line)
	}

	c := NewCatalog()

	for i := 0; i+1 < len(node.Content); i += 2 {
		segment := node.Content[i].Value
		value := resolve(node.Content[i+1])

		key := segment
		if path != "" {
			key = path + "." + segment
		}

		switch {
		case value.Kind == yaml.MappingNode:
			child, err := catalogFromNode(value, key)
			if err != nil {
				return nil, err
			}

			c.put(segment, &Node{Children: child})
		case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null":
			c.put(segment, &Node{})
		case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!str":
			c.put(segment, &Node{Value: value.Value})
		default:
			return nil, fmt.Errorf("%w: %s must be a string or a mapping (line %d)", ErrInvalidCatalog, describe(key), value.Line)
		}
	}

	return c, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func describe(path string) string {
	if path == "" {
		return "root"
	}

	return fmt.Sprintf("%q", path)
}

// MarshalJSON encodes the catalog as a JSON object in segment order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, segment := range c.Segments() {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(segment)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')

		n := c.nodes[segment]

		var value []byte
		if n.IsLeaf() {
			value, err = json.Marshal(n.Value)
		} else {
			value, err = n.Children.MarshalJSON()
		}
		if err != nil {
			return nil, fmt.Errorf("unable to encode %q: %w", segment, err)
		}
		b.Write(value)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	return c.decode(bytes.NewReader(data))
}

// MarshalYAML encodes the catalog as a mapping in segment order with double quoted translations.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.node(), nil
}

func (c *Catalog) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := catalogFromNode(value, "")
	if err != nil {
		return err
	}

	*c = *decoded
	return nil
}

func (c *Catalog) decode(r io.Reader) error {
	decoded, err := ReadCatalog(r)
	if err != nil {
		return err
	}

	*c = *decoded
	return nil
}

func (c *Catalog) node() *yaml.Node {
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, segment := range c.Segments() {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: segment,
		}

		n := c.nodes[segment]
		if !n.IsLeaf() {
			root.Content = append(root.Content, keyNode, n.Children.node())
			continue
		}

		valueNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: n.Value,
			Style: yaml.DoubleQuotedStyle,
		}
		root.Content = append(root.Content, keyNode, valueNode)
	}

	return root
}

// WriteJSON writes the catalog as indented JSON.
func WriteJSON(w io.Writer, c *Catalog) error {
	data, err := c.MarshalJSON()
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return fmt.Errorf("unable to indent catalog: %w", err)
	}
	b.WriteByte('\n')

	_, err = b.WriteTo(w)
	return err
}

// WriteYAML writes the catalog as YAML indented by two spaces.
func WriteYAML(w io.Writer, c *Catalog) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(c.node()); err != nil {
		return fmt.Errorf("error writing yaml: %w", err)
	}

	return encoder.Close()
}
