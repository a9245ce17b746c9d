package clap

// Summary is the immutable application metadata shown by manuals.
type Summary struct {
	name        string
	binName     string
	author      string
	version     string
	description string
}

// NewSummary builds application metadata.
func NewSummary(name, binName, author, version, description string) Summary {
	return Summary{
		name:        name,
		binName:     binName,
		author:      author,
		version:     version,
		description: description,
	}
}

func (s Summary) Name() string        { return s.name }
func (s Summary) BinName() string     { return s.binName }
func (s Summary) Author() string      { return s.author }
func (s Summary) Version() string     { return s.version }
func (s Summary) Description() string { return s.description }

// Application bundles the metadata, options and variables of one
// command-line program.
type Application struct {
	summary   Summary
	options   *OptionCollection
	variables *VariableCollection
}

// NewApplication builds an application description.
func NewApplication(summary Summary, options *OptionCollection, variables *VariableCollection) *Application {
	return &Application{summary: summary, options: options, variables: variables}
}

// Summary returns the application metadata.
func (a *Application) Summary() Summary { return a.summary }

// Options returns the option registry.
func (a *Application) Options() *OptionCollection { return a.options }

// Variables returns the variable registry.
func (a *Application) Variables() *VariableCollection { return a.variables }
