package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Render (H001-H009)
	"H001": {Category: CategoryRender, Message: "Failed to write rendered markup"},

	// Documents (H010-H019)
	"H010": {Category: CategoryDocument, Message: "Invalid page document"},
	"H011": {Category: CategoryDocument, Message: "Unknown node form"},
	"H012": {Category: CategoryDocument, Message: "Invalid attribute value"},

	// Config (H020-H029)
	"H020": {Category: CategoryConfig, Message: "Configuration file not found"},
	"H021": {Category: CategoryConfig, Message: "Invalid configuration file"},
	"H022": {Category: CategoryConfig, Message: "Invalid configuration value"},

	// Site (H030-H039)
	"H030": {Category: CategorySite, Message: "Failed to read page source"},
	"H031": {Category: CategorySite, Message: "Failed to write page output"},

	// Publish (H040-H049)
	"H040": {Category: CategoryPublish, Message: "Upload failed"},
	"H041": {Category: CategoryPublish, Message: "Publish cache unavailable"},

	// Server (H050-H059)
	"H050": {Category: CategoryServer, Message: "Server failed"},

	// CLI (H060-H069)
	"H060": {Category: CategoryCLI, Message: "Failed to create site"},
}

// AllCodes returns all registered error codes.
func AllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// Lookup returns the template for an error code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
