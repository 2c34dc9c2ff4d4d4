package corpus

// Language identifies which side of a program pair a program belongs to.
type Language string

const (
	LanguageC    Language = "c"
	LanguageRust Language = "rust"
)

// FeatureRelationship describes the feature set of the Rust program relative
// to its C counterpart.
type FeatureRelationship string

const (
	RustSubsetOfC     FeatureRelationship = "rust_subset_of_c"
	RustEquivalentToC FeatureRelationship = "rust_equivalent_to_c"
	RustSupersetOfC   FeatureRelationship = "rust_superset_of_c"
	Overlapping       FeatureRelationship = "overlapping"
)

// Program is one side of a program pair.
type Program struct {
	Language         Language `json:"language"`
	DocumentationURL string   `json:"documentation_url"`
	RepositoryURL    string   `json:"repository_url"`
	SourcePaths      []string `json:"source_paths"`
}

// ProgramPair pairs a C program with its Rust counterpart.
type ProgramPair struct {
	ProgramName         string              `json:"program_name"`
	ProgramDescription  string              `json:"program_description"`
	TranslationTools    []string            `json:"translation_tools"`
	FeatureRelationship FeatureRelationship `json:"feature_relationship"`
	CProgram            Program             `json:"c_program"`
	RustProgram         Program             `json:"rust_program"`
}

// Metadata is the normalized contents of one metadata file. Both on-disk
// layouts parse into this form, with shared project information flattened
// into each pair.
type Metadata struct {
	Pairs []ProgramPair `json:"pairs"`
}
