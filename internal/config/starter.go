package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type starterEntry struct {
	key     string
	value   string
	comment string
}

type starterSection struct {
	name    string
	comment string
	entries []starterEntry
}

var starterSections = []starterSection{
	{
		name:    "omdb",
		comment: "OMDb movie metadata. Get a free key at http://www.omdbapi.com/apikey.aspx",
		entries: []starterEntry{
			{key: "api_key", value: PlaceholderOMDBAPIKey, comment: "Paste your OMDb API key here (or set OMDB_API_KEY)"},
			{key: "base_url", value: DefaultOMDBBaseURL},
		},
	},
	{
		name:    "upcitemdb",
		comment: "UPCitemdb barcode lookup. Works without a key on the trial tier.",
		entries: []starterEntry{
			{key: "api_key", value: "", comment: "Optional paid-tier key (or set UPCITEMDB_API_KEY)"},
			{key: "base_url", value: DefaultUPCItemDBBaseURL},
		},
	},
	{
		name: "output",
		entries: []starterEntry{
			{key: "file", value: DefaultOutputFile, comment: "Collection file, appended to on every match"},
		},
	},
	{
		name: "http",
		entries: []starterEntry{
			{key: "timeout", value: DefaultHTTPTimeout.String(), comment: "Per-request timeout for both services"},
		},
	},
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func starterDocument() *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, section := range starterSections {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, entry := range section.entries {
			key := scalar(entry.key)
			key.HeadComment = entry.comment
			body.Content = append(body.Content, key, scalar(entry.value))
		}

		name := scalar(section.name)
		name.HeadComment = section.comment
		root.Content = append(root.Content, name, body)
	}

	return &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "shelfscan configuration",
		Content:     []*yaml.Node{root},
	}
}

// WriteStarter writes a commented default config file to path.
// It refuses to overwrite an existing file.
func WriteStarter(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(starterDocument()); err != nil {
		return fmt.Errorf("failed to encode config file: %w", err)
	}
	return enc.Close()
}
