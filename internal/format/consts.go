package format

// Layout constants for the binstore file format.
//
// A file begins with an 8-byte version identifier. It is followed by
// records until EOF; each record is an 8-byte name length, that many
// UTF-8 name bytes, an 8-byte payload length, and that many payload
// bytes.
const (
	// U64Size is the width of every length and version field.
	U64Size = 8

	// HeaderSize is the size of the file header (the version identifier).
	HeaderSize = U64Size

	// RecordMinSize is the smallest possible record (empty name, empty payload).
	RecordMinSize = 2 * U64Size

	// MaxFieldLen caps name and payload lengths read from a file.
	// Prevents a corrupted length field from driving a huge allocation.
	MaxFieldLen = 1 << 30
)
