package cif

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes blocks to w as an indented JSON object. Blocks keep
// their document order; within a block, items are sorted alphabetically by
// name. Table values become objects of column name to row array, columns in
// declared order.
func EncodeJSON(w io.Writer, blocks []*DataBlock) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, block := range blocks {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, block.Header); err != nil {
			return err
		}
		if err := writeJSONItems(&buf, block.Items); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

func writeJSONItems(buf *bytes.Buffer, items *Items) error {
	buf.WriteByte('{')
	for i, name := range sortedNames(items) {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(buf, name); err != nil {
			return err
		}
		v, _ := items.Get(name)
		if !v.IsTable() {
			b, err := json.Marshal(v.Scalar)
			if err != nil {
				return err
			}
			buf.Write(b)
			continue
		}
		buf.WriteByte('{')
		for j, col := range v.Table.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(buf, col); err != nil {
				return err
			}
			b, err := json.Marshal(v.Table.Column(col))
			if err != nil {
				return err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return nil
}

// EncodeYAML writes blocks to w as a YAML mapping with the same ordering
// rules as EncodeJSON. The document is built as a yaml.Node tree because a
// plain map would lose block and column order.
func EncodeYAML(w io.Writer, blocks []*DataBlock) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, block := range blocks {
		root.Content = append(root.Content, yamlStr(block.Header), yamlItems(block.Items))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func yamlItems(items *Items) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range sortedNames(items) {
		v, _ := items.Get(name)
		if !v.IsTable() {
			node.Content = append(node.Content, yamlStr(name), yamlStr(v.Scalar))
			continue
		}
		table := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, col := range v.Table.Columns {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, cell := range v.Table.Column(col) {
				seq.Content = append(seq.Content, yamlStr(cell))
			}
			table.Content = append(table.Content, yamlStr(col), seq)
		}
		node.Content = append(node.Content, yamlStr(name), table)
	}
	return node
}

func yamlStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func sortedNames(items *Items) []string {
	names := append([]string(nil), items.Names()...)
	sort.Strings(names)
	return names
}
