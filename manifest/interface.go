package manifest

// Parser parses raw manifest bytes into a Manifest.
type Parser interface {
	// Parse unmarshals manifest bytes into a Manifest struct.
	Parse(data []byte) (*Manifest, error)
}
