package item

// ==================== Item IDs ====================

// Item ids are drawn uniformly from [MinItemID, MaxItemID]
const (
	MinItemID = 100000
	MaxItemID = 999999

	// MaxIDRedraws bounds the random draws per id before scanning for the next free one
	MaxIDRedraws = 32
)

// ==================== Configuration File Names ====================

// Catalog configuration file names
const (
	// CatalogFileName is the name of the embedded default catalog
	CatalogFileName = "catalog.json"

	// CatalogSchemaName is the name the catalog schema is registered under
	CatalogSchemaName = "catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed  = "failed to parse catalog: %w"
	ErrMsgSchemaCatalogFailed = "catalog schema validation failed: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgCatalogNil       = "catalog is nil"
	ErrMsgNoItemsDefined   = "no items defined"
	ErrMsgSpreadOutOfRange = "damage_spread must be within [0, 1]"
	ErrMsgHealNotPositive  = "heal_amount must be positive"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty key"
	ErrFmtItemInvalid      = "%w: item '%s': %s"
	ErrFmtDuplicateKey     = "%w: '%s'"
	ErrFmtUnknownKey       = "%w: '%s'"
)
