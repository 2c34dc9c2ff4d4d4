package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed metadata.schema.json
var metadataSchemaJSON string

var metadataSchema = jsonschema.MustCompileString("metadata.schema.json", metadataSchemaJSON)

// Shape identifies the on-disk layout of a metadata file.
type Shape string

const (
	// ShapeIndividual lists self-contained pairs, each carrying its own
	// repository information.
	ShapeIndividual Shape = "individual"

	// ShapeProject shares repository information across all pairs through a
	// project_information object.
	ShapeProject Shape = "project"
)

// Document is a parsed metadata file. It retains the original layout so the
// file can be written back in the shape it was read in.
type Document struct {
	Path  string
	Shape Shape

	individual *individualDocument
	project    *projectDocument
}

// Parse reads and validates the metadata file at path.
func Parse(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path

	return doc, nil
}

// ParseBytes validates raw metadata against the corpus schema and parses it
// into a Document.
func ParseBytes(raw []byte) (*Document, error) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if err := metadataSchema.Validate(value); err != nil {
		return nil, fmt.Errorf("metadata failed schema validation: %w", err)
	}

	// The schema guarantees a JSON object at the top level; the presence of
	// project_information decides which layout the file uses.
	object := value.(map[string]interface{})
	if _, ok := object["project_information"]; ok {
		var doc projectDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode project metadata: %w", err)
		}
		return &Document{Shape: ShapeProject, project: &doc}, nil
	}

	var doc individualDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode individual metadata: %w", err)
	}
	return &Document{Shape: ShapeIndividual, individual: &doc}, nil
}

// Metadata returns the document's pairs in normalized form: language fields
// populated and, for the project layout, repository information flattened
// into each pair.
func (d *Document) Metadata() Metadata {
	switch d.Shape {
	case ShapeProject:
		return d.project.normalize()
	case ShapeIndividual:
		return d.individual.normalize()
	default:
		return Metadata{}
	}
}

type individualProgram struct {
	DocumentationURL string   `json:"documentation_url"`
	RepositoryURL    string   `json:"repository_url"`
	SourcePaths      []string `json:"source_paths"`
}

type individualPair struct {
	ProgramName         string              `json:"program_name"`
	ProgramDescription  string              `json:"program_description"`
	TranslationTools    []string            `json:"translation_tools"`
	FeatureRelationship FeatureRelationship `json:"feature_relationship"`
	CProgram            individualProgram   `json:"c_program"`
	RustProgram         individualProgram   `json:"rust_program"`
}

type individualDocument struct {
	Pairs []individualPair `json:"pairs"`
}

func (d *individualDocument) normalize() Metadata {
	pairs := make([]ProgramPair, 0, len(d.Pairs))
	for _, pair := range d.Pairs {
		pairs = append(pairs, ProgramPair{
			ProgramName:         pair.ProgramName,
			ProgramDescription:  pair.ProgramDescription,
			TranslationTools:    pair.TranslationTools,
			FeatureRelationship: pair.FeatureRelationship,
			CProgram: Program{
				Language:         LanguageC,
				DocumentationURL: pair.CProgram.DocumentationURL,
				RepositoryURL:    pair.CProgram.RepositoryURL,
				SourcePaths:      pair.CProgram.SourcePaths,
			},
			RustProgram: Program{
				Language:         LanguageRust,
				DocumentationURL: pair.RustProgram.DocumentationURL,
				RepositoryURL:    pair.RustProgram.RepositoryURL,
				SourcePaths:      pair.RustProgram.SourcePaths,
			},
		})
	}
	return Metadata{Pairs: pairs}
}

type projectProgramInfo struct {
	DocumentationURL string `json:"documentation_url"`
	RepositoryURL    string `json:"repository_url"`
}

type projectInformation struct {
	TranslationTools    []string            `json:"translation_tools"`
	FeatureRelationship FeatureRelationship `json:"feature_relationship"`
	CProgram            projectProgramInfo  `json:"c_program"`
	RustProgram         projectProgramInfo  `json:"rust_program"`
}

type projectSources struct {
	SourcePaths []string `json:"source_paths"`
}

type projectPair struct {
	ProgramName        string         `json:"program_name"`
	ProgramDescription string         `json:"program_description"`
	CProgram           projectSources `json:"c_program"`
	RustProgram        projectSources `json:"rust_program"`
}

type projectDocument struct {
	ProjectInformation projectInformation `json:"project_information"`
	Pairs              []projectPair      `json:"pairs"`
}

func (d *projectDocument) normalize() Metadata {
	info := d.ProjectInformation
	pairs := make([]ProgramPair, 0, len(d.Pairs))
	for _, pair := range d.Pairs {
		pairs = append(pairs, ProgramPair{
			ProgramName:         pair.ProgramName,
			ProgramDescription:  pair.ProgramDescription,
			TranslationTools:    info.TranslationTools,
			FeatureRelationship: info.FeatureRelationship,
			CProgram: Program{
				Language:         LanguageC,
				DocumentationURL: info.CProgram.DocumentationURL,
				RepositoryURL:    info.CProgram.RepositoryURL,
				SourcePaths:      pair.CProgram.SourcePaths,
			},
			RustProgram: Program{
				Language:         LanguageRust,
				DocumentationURL: info.RustProgram.DocumentationURL,
				RepositoryURL:    info.RustProgram.RepositoryURL,
				SourcePaths:      pair.RustProgram.SourcePaths,
			},
		})
	}
	return Metadata{Pairs: pairs}
}
