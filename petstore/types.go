// Package petstore is a sample API model used to exercise the Go
// analyzer end to end.
package petstore

import (
	"encoding/xml"
	"time"
)

// Category groups pets.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a free-form label.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Status is the availability of a pet in the store.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// Weight is a plain named scalar without constants.
type Weight float64

// Pet is anything the store sells.
//
// +model:discriminator=petType
// +model:subtypes=Dog,Cat
// +model:xml-namespace=urn:petstore
type Pet struct {
	XMLName xml.Name `xml:"pet"`

	// Unique identifier.
	ID int64 `json:"id" model:"readonly,position=0"`

	// Display name of the pet.
	Name string `json:"name" model:"required,position=1" example:"doggie"`

	PetType  string   `json:"petType" model:"required"`
	Category Category `json:"category"`

	// Photo links.
	PhotoURLs []string `json:"photoUrls" xml:"photoUrls>photoUrl"`

	Tags   []Tag  `json:"tags,omitempty" model:"wrapped"`
	Status Status `json:"status"`
	Weight Weight `json:"weight"`

	secret string
}

// Dog is a pet that barks.
type Dog struct {
	Pet

	PackSize int  `json:"packSize" example:"3"`
	Good     bool `json:"good"`
}

// Cat is a pet that ignores you.
type Cat struct {
	Pet

	HuntingSkill string `json:"huntingSkill" xml:"skill"`
}

// Order is a purchase of pets.
//
// +model:name=PetOrder
type Order struct {
	ID       int64               `json:"id"`
	Pets     []*Pet              `json:"pets"`
	Quantity int32               `json:"quantity"`
	ShipDate time.Time           `json:"shipDate"`
	Complete bool                `json:"complete,omitempty"`
	Notes    map[string]string   `json:"notes"`
	Extra    map[string]any      `json:"extra"`
	Lines    map[string]Line     `json:"lines"`
	Flags    map[string]struct{} `json:"flags"`
	Payload  []byte              `json:"payload"`
	Ignored  string              `json:"-"`
	Callback func()              `json:"callback"`
}

// Line is one entry of an order.
type Line struct {
	SKU    string `json:"sku"`
	Amount int    `json:"amount"`
}

// TreeNode is a self-referential structure.
type TreeNode struct {
	Value    string      `json:"value"`
	Children []*TreeNode `json:"children"`
	Parent   *TreeNode   `json:"parent,omitempty"`
}
