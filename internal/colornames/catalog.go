package colornames

import (
	"fmt"
	"strings"
)

// Entry is a single named color.
type Entry struct {
	Name string
	Hex  string
}

// Catalog is an ordered list of named colors. When two entries are equally
// close to a query, the earlier one wins.
type Catalog []Entry

const (
	CatalogTailwind = "tailwind"
	CatalogCSS      = "css"
)

// ByName returns the built-in catalog called name.
func ByName(name string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CatalogTailwind:
		return Tailwind(), nil
	case CatalogCSS:
		return CSS(), nil
	default:
		return nil, fmt.Errorf("unknown color name catalog %q", name)
	}
}

var tailwindShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var tailwindFamilies = []struct {
	name   string
	shades [11]string
}{
	{"slate", [11]string{"#F8FAFC", "#F1F5F9", "#E2E8F0", "#CBD5E1", "#94A3B8", "#64748B", "#475569", "#334155", "#1E293B", "#0F172A", "#020617"}},
	{"gray", [11]string{"#F9FAFB", "#F3F4F6", "#E5E7EB", "#D1D5DB", "#9CA3AF", "#6B7280", "#4B5563", "#374151", "#1F2937", "#111827", "#030712"}},
	{"zinc", [11]string{"#FAFAFA", "#F4F4F5", "#E4E4E7", "#D4D4D8", "#A1A1AA", "#71717A", "#52525B", "#3F3F46", "#27272A", "#18181B", "#09090B"}},
	{"neutral", [11]string{"#FAFAFA", "#F5F5F5", "#E5E5E5", "#D4D4D4", "#A3A3A3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0A0A0A"}},
	{"stone", [11]string{"#FAFAF9", "#F5F5F4", "#E7E5E4", "#D6D3D1", "#A8A29E", "#78716C", "#57534E", "#44403C", "#292524", "#1C1917", "#0C0A09"}},
	{"red", [11]string{"#FEF2F2", "#FEE2E2", "#FECACA", "#FCA5A5", "#F87171", "#EF4444", "#DC2626", "#B91C1C", "#991B1B", "#7F1D1D", "#450A0A"}},
	{"orange", [11]string{"#FFF7ED", "#FFEDD5", "#FED7AA", "#FDBA74", "#FB923C", "#F97316", "#EA580C", "#C2410C", "#9A3412", "#7C2D12", "#431407"}},
	{"amber", [11]string{"#FFFBEB", "#FEF3C7", "#FDE68A", "#FCD34D", "#FBBF24", "#F59E0B", "#D97706", "#B45309", "#92400E", "#78350F", "#451A03"}},
	{"yellow", [11]string{"#FEFCE8", "#FEF9C3", "#FEF08A", "#FDE047", "#FACC15", "#EAB308", "#CA8A04", "#A16207", "#854D0E", "#713F12", "#422006"}},
	{"lime", [11]string{"#F7FEE7", "#ECFCCB", "#D9F99D", "#BEF264", "#A3E635", "#84CC16", "#65A30D", "#4D7C0F", "#3F6212", "#365314", "#1A2E05"}},
	{"green", [11]string{"#F0FDF4", "#DCFCE7", "#BBF7D0", "#86EFAC", "#4ADE80", "#22C55E", "#16A34A", "#15803D", "#166534", "#14532D", "#052E16"}},
	{"emerald", [11]string{"#ECFDF5", "#D1FAE5", "#A7F3D0", "#6EE7B7", "#34D399", "#10B981", "#059669", "#047857", "#065F46", "#064E3B", "#022C22"}},
	{"teal", [11]string{"#F0FDFA", "#CCFBF1", "#99F6E4", "#5EEAD4", "#2DD4BF", "#14B8A6", "#0D9488", "#0F766E", "#115E59", "#134E4A", "#042F2E"}},
	{"cyan", [11]string{"#ECFEFF", "#CFFAFE", "#A5F3FC", "#67E8F9", "#22D3EE", "#06B6D4", "#0891B2", "#0E7490", "#155E75", "#164E63", "#083344"}},
	{"sky", [11]string{"#F0F9FF", "#E0F2FE", "#BAE6FD", "#7DD3FC", "#38BDF8", "#0EA5E9", "#0284C7", "#0369A1", "#075985", "#0C4A6E", "#082F49"}},
	{"blue", [11]string{"#EFF6FF", "#DBEAFE", "#BFDBFE", "#93C5FD", "#60A5FA", "#3B82F6", "#2563EB", "#1D4ED8", "#1E40AF", "#1E3A8A", "#172554"}},
	{"indigo", [11]string{"#EEF2FF", "#E0E7FF", "#C7D2FE", "#A5B4FC", "#818CF8", "#6366F1", "#4F46E5", "#4338CA", "#3730A3", "#312E81", "#1E1B4B"}},
	{"violet", [11]string{"#F5F3FF", "#EDE9FE", "#DDD6FE", "#C4B5FD", "#A78BFA", "#8B5CF6", "#7C3AED", "#6D28D9", "#5B21B6", "#4C1D95", "#2E1065"}},
	{"purple", [11]string{"#FAF5FF", "#F3E8FF", "#E9D5FF", "#D8B4FE", "#C084FC", "#A855F7", "#9333EA", "#7E22CE", "#6B21A8", "#581C87", "#3B0764"}},
	{"fuchsia", [11]string{"#FDF4FF", "#FAE8FF", "#F5D0FE", "#F0ABFC", "#E879F9", "#D946EF", "#C026D3", "#A21CAF", "#86198F", "#701A75", "#4A044E"}},
	{"pink", [11]string{"#FDF2F8", "#FCE7F3", "#FBCFE8", "#F9A8D4", "#F472B6", "#EC4899", "#DB2777", "#BE185D", "#9D174D", "#831843", "#500724"}},
	{"rose", [11]string{"#FFF1F2", "#FFE4E6", "#FECDD3", "#FDA4AF", "#FB7185", "#F43F5E", "#E11D48", "#BE123C", "#9F1239", "#881337", "#4C0519"}},
}

// Tailwind returns the Tailwind default palette, named "<family>-<shade>",
// followed by black and white.
func Tailwind() Catalog {
	c := make(Catalog, 0, len(tailwindFamilies)*len(tailwindShades)+2)
	for _, fam := range tailwindFamilies {
		for i, shade := range tailwindShades {
			c = append(c, Entry{Name: fam.name + "-" + shade, Hex: fam.shades[i]})
		}
	}
	return append(c, Entry{Name: "black", Hex: "#000000"}, Entry{Name: "white", Hex: "#FFFFFF"})
}

var cssColors = Catalog{
	{"black", "#000000"}, {"white", "#FFFFFF"}, {"red", "#FF0000"}, {"lime", "#00FF00"},
	{"blue", "#0000FF"}, {"yellow", "#FFFF00"}, {"cyan", "#00FFFF"}, {"magenta", "#FF00FF"},
	{"silver", "#C0C0C0"}, {"gray", "#808080"}, {"maroon", "#800000"}, {"olive", "#808000"},
	{"green", "#008000"}, {"purple", "#800080"}, {"teal", "#008080"}, {"navy", "#000080"},
	{"aliceblue", "#F0F8FF"}, {"antiquewhite", "#FAEBD7"}, {"aquamarine", "#7FFFD4"}, {"azure", "#F0FFFF"},
	{"beige", "#F5F5DC"}, {"bisque", "#FFE4C4"}, {"blanchedalmond", "#FFEBCD"}, {"blueviolet", "#8A2BE2"},
	{"brown", "#A52A2A"}, {"burlywood", "#DEB887"}, {"cadetblue", "#5F9EA0"}, {"chartreuse", "#7FFF00"},
	{"chocolate", "#D2691E"}, {"coral", "#FF7F50"}, {"cornflowerblue", "#6495ED"}, {"cornsilk", "#FFF8DC"},
	{"crimson", "#DC143C"}, {"darkblue", "#00008B"}, {"darkcyan", "#008B8B"}, {"darkgoldenrod", "#B8860B"},
	{"darkgray", "#A9A9A9"}, {"darkgreen", "#006400"}, {"darkkhaki", "#BDB76B"}, {"darkmagenta", "#8B008B"},
	{"darkolivegreen", "#556B2F"}, {"darkorange", "#FF8C00"}, {"darkorchid", "#9932CC"}, {"darkred", "#8B0000"},
	{"darksalmon", "#E9967A"}, {"darkseagreen", "#8FBC8F"}, {"darkslateblue", "#483D8B"}, {"darkslategray", "#2F4F4F"},
	{"darkturquoise", "#00CED1"}, {"darkviolet", "#9400D3"}, {"deeppink", "#FF1493"}, {"deepskyblue", "#00BFFF"},
	{"dimgray", "#696969"}, {"dodgerblue", "#1E90FF"}, {"firebrick", "#B22222"}, {"floralwhite", "#FFFAF0"},
	{"forestgreen", "#228B22"}, {"gainsboro", "#DCDCDC"}, {"ghostwhite", "#F8F8FF"}, {"gold", "#FFD700"},
	{"goldenrod", "#DAA520"}, {"greenyellow", "#ADFF2F"}, {"honeydew", "#F0FFF0"}, {"hotpink", "#FF69B4"},
	{"indianred", "#CD5C5C"}, {"indigo", "#4B0082"}, {"ivory", "#FFFFF0"}, {"khaki", "#F0E68C"},
	{"lavender", "#E6E6FA"}, {"lavenderblush", "#FFF0F5"}, {"lawngreen", "#7CFC00"}, {"lemonchiffon", "#FFFACD"},
	{"lightblue", "#ADD8E6"}, {"lightcoral", "#F08080"}, {"lightcyan", "#E0FFFF"}, {"lightgoldenrodyellow", "#FAFAD2"},
	{"lightgray", "#D3D3D3"}, {"lightgreen", "#90EE90"}, {"lightpink", "#FFB6C1"}, {"lightsalmon", "#FFA07A"},
	{"lightseagreen", "#20B2AA"}, {"lightskyblue", "#87CEFA"}, {"lightslategray", "#778899"}, {"lightsteelblue", "#B0C4DE"},
	{"lightyellow", "#FFFFE0"}, {"limegreen", "#32CD32"}, {"linen", "#FAF0E6"}, {"mediumaquamarine", "#66CDAA"},
	{"mediumblue", "#0000CD"}, {"mediumorchid", "#BA55D3"}, {"mediumpurple", "#9370DB"}, {"mediumseagreen", "#3CB371"},
	{"mediumslateblue", "#7B68EE"}, {"mediumspringgreen", "#00FA9A"}, {"mediumturquoise", "#48D1CC"}, {"mediumvioletred", "#C71585"},
	{"midnightblue", "#191970"}, {"mintcream", "#F5FFFA"}, {"mistyrose", "#FFE4E1"}, {"moccasin", "#FFE4B5"},
	{"navajowhite", "#FFDEAD"}, {"oldlace", "#FDF5E6"}, {"olivedrab", "#6B8E23"}, {"orange", "#FFA500"},
	{"orangered", "#FF4500"}, {"orchid", "#DA70D6"}, {"palegoldenrod", "#EEE8AA"}, {"palegreen", "#98FB98"},
	{"paleturquoise", "#AFEEEE"}, {"palevioletred", "#DB7093"}, {"papayawhip", "#FFEFD5"}, {"peachpuff", "#FFDAB9"},
	{"peru", "#CD853F"}, {"pink", "#FFC0CB"}, {"plum", "#DDA0DD"}, {"powderblue", "#B0E0E6"},
	{"rebeccapurple", "#663399"}, {"rosybrown", "#BC8F8F"}, {"royalblue", "#4169E1"}, {"saddlebrown", "#8B4513"},
	{"salmon", "#FA8072"}, {"sandybrown", "#F4A460"}, {"seagreen", "#2E8B57"}, {"seashell", "#FFF5EE"},
	{"sienna", "#A0522D"}, {"skyblue", "#87CEEB"}, {"slateblue", "#6A5ACD"}, {"slategray", "#708090"},
	{"snow", "#FFFAFA"}, {"springgreen", "#00FF7F"}, {"steelblue", "#4682B4"}, {"tan", "#D2B48C"},
	{"thistle", "#D8BFD8"}, {"tomato", "#FF6347"}, {"turquoise", "#40E0D0"}, {"violet", "#EE82EE"},
	{"wheat", "#F5DEB3"}, {"whitesmoke", "#F5F5F5"}, {"yellowgreen", "#9ACD32"},
}

// CSS returns the CSS named colors. Aliases such as aqua and fuchsia are
// left out so every hex maps to one name.
func CSS() Catalog {
	out := make(Catalog, len(cssColors))
	copy(out, cssColors)
	return out
}
