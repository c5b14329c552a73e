// Package formfile reads form definitions from JSON or YAML documents.
package formfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/yyvfuruta/formcheck/internal/models"
	"gopkg.in/yaml.v3"
)

// Load reads every form in the file at path.
func Load(path string) ([]*models.Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	forms, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return forms, nil
}

// Decode reads forms from r, one per YAML document. JSON input is a single
// document. Empty documents are skipped and forms without a uuid get one.
func Decode(r io.Reader) ([]*models.Form, error) {
	dec := yaml.NewDecoder(r)

	var forms []*models.Form
	for i := 0; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
		}

		if isEmpty(&node) {
			continue
		}

		form := &models.Form{}
		if err := node.Decode(form); err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
		}

		if form.UUID == uuid.Nil {
			form.UUID = uuid.New()
		}

		forms = append(forms, form)
	}

	return forms, nil
}

func isEmpty(node *yaml.Node) bool {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return true
		}
		node = node.Content[0]
	}
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
