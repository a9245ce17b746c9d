package binstore

// VersionIdentifier identifies a configuration schema version. A higher
// number means a newer version; bump it whenever the setting layout
// changes.
type VersionIdentifier = uint64

// Configuration pairs a schema version with its setting collection.
// It is immutable once constructed.
type Configuration struct {
	version  VersionIdentifier
	settings *SettingCollection
}

// NewConfiguration creates a configuration.
func NewConfiguration(version VersionIdentifier, settings *SettingCollection) Configuration {
	return Configuration{version: version, settings: settings}
}

// Version returns the schema version.
func (c Configuration) Version() VersionIdentifier { return c.version }

// Settings returns the setting collection.
func (c Configuration) Settings() *SettingCollection { return c.settings }
