package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/osse101/roomcrawl/internal/domain"
	"github.com/osse101/roomcrawl/internal/validation"
)

// Sentinel errors for the catalog
var (
	ErrDuplicateKey = errors.New("duplicate item key")

	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed catalog.json
var defaultCatalogJSON []byte

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

// Catalog is the set of item templates items can be created from
type Catalog struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`

	byKey map[string]*Def
}

// Def is a single item template
type Def struct {
	Key          string          `json:"key"`
	Name         string          `json:"name"`
	Kind         domain.ItemKind `json:"kind"`
	DamageBonus  float64         `json:"damage_bonus,omitempty"`
	DamageSpread float64         `json:"damage_spread,omitempty"`
	HealAmount   float64         `json:"heal_amount,omitempty"`
}

var (
	schemaOnce      sync.Once
	schemaValidator validation.SchemaValidator
	schemaErr       error
)

func catalogValidator() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schemaValidator = validation.NewSchemaValidator()
		schemaErr = schemaValidator.Register(CatalogSchemaName, catalogSchemaJSON)
	})
	return schemaValidator, schemaErr
}

// DefaultCatalog returns the catalog embedded in the binary
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogJSON)
}

// LoadCatalog reads, schema-validates and checks a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog validates raw catalog JSON and builds the key index
func ParseCatalog(data []byte) (*Catalog, error) {
	v, err := catalogValidator()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCatalogFailed, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the semantic rules the schema cannot express and
// rebuilds the key index
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogNil)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	byKey := make(map[string]*Def, len(c.Items))
	for i := range c.Items {
		def := &c.Items[i]
		if def.Key == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidCatalog, i)
		}
		if _, dup := byKey[def.Key]; dup {
			return fmt.Errorf(ErrFmtDuplicateKey, ErrDuplicateKey, def.Key)
		}
		if err := validateDef(def); err != nil {
			return err
		}
		byKey[def.Key] = def
	}
	c.byKey = byKey
	return nil
}

func validateDef(def *Def) error {
	if !def.Kind.Valid() {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidCatalog, def.Key, "unknown kind "+string(def.Kind))
	}
	switch def.Kind {
	case domain.KindWeapon:
		if def.DamageSpread < 0 || def.DamageSpread > 1 {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidCatalog, def.Key, ErrMsgSpreadOutOfRange)
		}
	case domain.KindHealing:
		if def.HealAmount <= 0 {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidCatalog, def.Key, ErrMsgHealNotPositive)
		}
	case domain.KindHelmet, domain.KindArmor, domain.KindBoots:
	}
	return nil
}

// Keys returns every template key in sorted order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Items))
	for _, def := range c.Items {
		keys = append(keys, def.Key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the template for key
func (c *Catalog) Lookup(key string) (*Def, bool) {
	if c.byKey == nil {
		if err := c.Validate(); err != nil {
			return nil, false
		}
	}
	def, ok := c.byKey[key]
	return def, ok
}

// Create instantiates the template for key with a fresh id from reg
func (c *Catalog) Create(reg *Registry, key string) (*domain.Item, error) {
	def, ok := c.Lookup(key)
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownKey, domain.ErrUnknownItem, key)
	}

	switch def.Kind {
	case domain.KindWeapon:
		return reg.NewWeapon(def.Name, def.DamageBonus, def.DamageSpread)
	case domain.KindHelmet:
		return reg.NewHelmet(def.Name)
	case domain.KindArmor:
		return reg.NewArmor(def.Name)
	case domain.KindBoots:
		return reg.NewBoots(def.Name)
	case domain.KindHealing:
		return reg.NewHealingItem(def.Name, def.HealAmount)
	}
	return nil, fmt.Errorf(ErrFmtItemInvalid, ErrInvalidCatalog, def.Key, "unknown kind "+string(def.Kind))
}
