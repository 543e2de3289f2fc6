package domain

// ChecksumKind names which fingerprint of an object a checksum refers to.
type ChecksumKind string

const (
	// ChecksumContent fingerprints the raw content of a document.
	ChecksumContent ChecksumKind = "content"
	// ChecksumAttribute fingerprints a single named attribute.
	ChecksumAttribute ChecksumKind = "attribute"
	// ChecksumObject fingerprints the whole object.
	ChecksumObject ChecksumKind = "object"
)

// ChecksumKey identifies one stored fingerprint: an object reference, the
// fingerprint kind, and for per-attribute fingerprints the attribute name.
type ChecksumKey struct {
	Ref       InternedString `json:"ref"`
	Kind      ChecksumKind   `json:"kind"`
	Attribute string         `json:"attribute,omitzero"`
}

// ContentKey builds the content fingerprint key for an object.
func ContentKey(ref InternedString) ChecksumKey {
	return ChecksumKey{Ref: ref, Kind: ChecksumContent}
}

// AttributeKey builds the per-attribute fingerprint key for an object.
func AttributeKey(ref InternedString, name string) ChecksumKey {
	return ChecksumKey{Ref: ref, Kind: ChecksumAttribute, Attribute: name}
}

// ObjectKey builds the whole-object fingerprint key for an object.
func ObjectKey(ref InternedString) ChecksumKey {
	return ChecksumKey{Ref: ref, Kind: ChecksumObject}
}

// ChecksumBatch holds the fingerprints of the current in-memory state,
// computed fresh at the start of a build. It is compared against the
// checksum store, which holds the fingerprints of the previous build.
type ChecksumBatch struct {
	sums map[ChecksumKey]string
}

// NewChecksumBatch creates an empty batch.
func NewChecksumBatch() *ChecksumBatch {
	return &ChecksumBatch{sums: make(map[ChecksumKey]string)}
}

// Set records a fingerprint in the batch.
func (b *ChecksumBatch) Set(key ChecksumKey, sum string) {
	b.sums[key] = sum
}

// Get returns the fingerprint for the key and whether it is present.
func (b *ChecksumBatch) Get(key ChecksumKey) (string, bool) {
	sum, ok := b.sums[key]
	return sum, ok
}

// Keys returns every key in the batch, in unspecified order.
func (b *ChecksumBatch) Keys() []ChecksumKey {
	keys := make([]ChecksumKey, 0, len(b.sums))
	for k := range b.sums {
		keys = append(keys, k)
	}
	return keys
}
