package graph

// Product is the kind of artifact a target produces. Values match the raw
// names used in project manifests.
type Product string

const (
	ProductApp                   Product = "app"
	ProductStaticLibrary         Product = "static_library"
	ProductDynamicLibrary        Product = "dynamic_library"
	ProductFramework             Product = "framework"
	ProductStaticFramework       Product = "staticFramework"
	ProductUnitTests             Product = "unit_tests"
	ProductUITests               Product = "ui_tests"
	ProductBundle                Product = "bundle"
	ProductCommandLineTool       Product = "commandLineTool"
	ProductAppExtension          Product = "app_extension"
	ProductWatch2App             Product = "watch2_app"
	ProductWatch2Extension       Product = "watch2_extension"
	ProductTVTopShelfExtension   Product = "tv_top_shelf_extension"
	ProductMessagesExtension     Product = "messages_extension"
	ProductStickerPackExtension  Product = "sticker_pack_extension"
	ProductAppClip               Product = "app_clip"
	ProductXPC                   Product = "xpc"
	ProductSystemExtension       Product = "system_extension"
	ProductExtensionKitExtension Product = "extension_kit_extension"
	ProductMacro                 Product = "macro"
)

// Capabilities is what a product kind can carry. It is looked up once from
// the product tag; the mapper branches on these booleans only.
type Capabilities struct {
	Resources bool // can embed bundled resources natively
	Sources   bool // can compile sources
	// SourcesMacOnly restricts Sources to targets whose destinations are all macOS
	SourcesMacOnly bool
}

type productInfo struct {
	description  string
	capabilities Capabilities
}

var products = map[Product]productInfo{
	ProductApp:                   {"application", Capabilities{Resources: true, Sources: true}},
	ProductStaticLibrary:         {"static library", Capabilities{Resources: false, Sources: true}},
	ProductDynamicLibrary:        {"dynamic library", Capabilities{Resources: false, Sources: true}},
	ProductFramework:             {"dynamic framework", Capabilities{Resources: true, Sources: true}},
	ProductStaticFramework:       {"static framework", Capabilities{Resources: false, Sources: true}},
	ProductUnitTests:             {"unit tests bundle", Capabilities{Resources: true, Sources: true}},
	ProductUITests:               {"ui tests bundle", Capabilities{Resources: true, Sources: true}},
	ProductBundle:                {"bundle", Capabilities{Resources: true, Sources: true, SourcesMacOnly: true}},
	ProductCommandLineTool:       {"command line tool", Capabilities{Resources: true, Sources: true}},
	ProductAppExtension:          {"app extension", Capabilities{Resources: true, Sources: true}},
	ProductWatch2App:             {"watch 2 application", Capabilities{Resources: true, Sources: false}},
	ProductWatch2Extension:       {"watch 2 extension", Capabilities{Resources: true, Sources: true}},
	ProductTVTopShelfExtension:   {"tvos top shelf extension", Capabilities{Resources: true, Sources: true}},
	ProductMessagesExtension:     {"iMessage extension", Capabilities{Resources: true, Sources: true}},
	ProductStickerPackExtension:  {"stickers pack extension", Capabilities{Resources: true, Sources: false}},
	ProductAppClip:               {"appClip", Capabilities{Resources: true, Sources: true}},
	ProductXPC:                   {"xpc", Capabilities{Resources: true, Sources: true}},
	ProductSystemExtension:       {"systemExtension", Capabilities{Resources: true, Sources: true}},
	ProductExtensionKitExtension: {"extensionKitExtension", Capabilities{Resources: true, Sources: true}},
	ProductMacro:                 {"Swift Macro", Capabilities{Resources: true, Sources: true}},
}

// Valid reports whether p is a known product kind.
func (p Product) Valid() bool {
	_, ok := products[p]
	return ok
}

// String returns the human description used in generated doc comments.
func (p Product) String() string {
	if info, ok := products[p]; ok {
		return info.description
	}
	return string(p)
}

// Capabilities returns the capability row for p. Unknown products get the
// zero row: no resources, no sources.
func (p Product) Capabilities() Capabilities {
	return products[p].capabilities
}

// Products returns every known product kind.
func Products() []Product {
	out := make([]Product, 0, len(products))
	for p := range products {
		out = append(out, p)
	}
	return out
}
