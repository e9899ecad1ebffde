package weather

import "strings"

// IconMapping describes how a weather code is rendered: an icon identifier
// understood by the frontend icon set, a stroke color and a background class.
type IconMapping struct {
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	BgColor string `json:"bgColor"`
}

// iconMap maps provider weather codes to display hints. Built once at
// process start and never mutated.
var iconMap = map[int]IconMapping{
	// Thunderstorm (200-232)
	200: {Icon: "cloud-lightning", Color: "#6366f1", BgColor: "bg-indigo-100"},
	201: {Icon: "cloud-lightning", Color: "#4f46e5", BgColor: "bg-indigo-200"},
	202: {Icon: "cloud-lightning", Color: "#4338ca", BgColor: "bg-indigo-300"},
	210: {Icon: "zap", Color: "#8b5cf6", BgColor: "bg-purple-100"},
	211: {Icon: "zap", Color: "#7c3aed", BgColor: "bg-purple-200"},
	212: {Icon: "zap", Color: "#6d28d9", BgColor: "bg-purple-300"},
	221: {Icon: "cloud-lightning", Color: "#5b21b6", BgColor: "bg-purple-400"},
	230: {Icon: "cloud-rain", Color: "#6366f1", BgColor: "bg-indigo-100"},
	231: {Icon: "cloud-rain", Color: "#4f46e5", BgColor: "bg-indigo-200"},
	232: {Icon: "cloud-rain", Color: "#4338ca", BgColor: "bg-indigo-300"},

	// Drizzle (300-321)
	300: {Icon: "cloud-drizzle", Color: "#06b6d4", BgColor: "bg-cyan-100"},
	301: {Icon: "cloud-drizzle", Color: "#0891b2", BgColor: "bg-cyan-200"},
	302: {Icon: "cloud-drizzle", Color: "#0e7490", BgColor: "bg-cyan-300"},
	310: {Icon: "cloud-rain", Color: "#06b6d4", BgColor: "bg-cyan-100"},
	311: {Icon: "cloud-rain", Color: "#0891b2", BgColor: "bg-cyan-200"},
	312: {Icon: "cloud-rain", Color: "#0e7490", BgColor: "bg-cyan-300"},
	313: {Icon: "umbrella", Color: "#0891b2", BgColor: "bg-cyan-200"},
	314: {Icon: "umbrella", Color: "#0e7490", BgColor: "bg-cyan-300"},
	321: {Icon: "cloud-drizzle", Color: "#0891b2", BgColor: "bg-cyan-200"},

	// Rain (500-531)
	500: {Icon: "cloud-rain", Color: "#3b82f6", BgColor: "bg-blue-100"},
	501: {Icon: "cloud-rain", Color: "#2563eb", BgColor: "bg-blue-200"},
	502: {Icon: "cloud-rain", Color: "#1d4ed8", BgColor: "bg-blue-300"},
	503: {Icon: "cloud-rain", Color: "#1e40af", BgColor: "bg-blue-400"},
	504: {Icon: "cloud-rain", Color: "#1e3a8a", BgColor: "bg-blue-500"},
	511: {Icon: "snowflake", Color: "#3b82f6", BgColor: "bg-blue-200"},
	520: {Icon: "umbrella", Color: "#3b82f6", BgColor: "bg-blue-100"},
	521: {Icon: "umbrella", Color: "#2563eb", BgColor: "bg-blue-200"},
	522: {Icon: "umbrella", Color: "#1d4ed8", BgColor: "bg-blue-300"},
	531: {Icon: "cloud-rain", Color: "#1e40af", BgColor: "bg-blue-400"},

	// Snow (600-622)
	600: {Icon: "snowflake", Color: "#e5e7eb", BgColor: "bg-gray-100"},
	601: {Icon: "snowflake", Color: "#d1d5db", BgColor: "bg-gray-200"},
	602: {Icon: "snowflake", Color: "#9ca3af", BgColor: "bg-gray-300"},
	611: {Icon: "snowflake", Color: "#6b7280", BgColor: "bg-gray-400"},
	612: {Icon: "cloud-drizzle", Color: "#e5e7eb", BgColor: "bg-gray-100"},
	613: {Icon: "cloud-drizzle", Color: "#d1d5db", BgColor: "bg-gray-200"},
	615: {Icon: "cloud", Color: "#9ca3af", BgColor: "bg-gray-200"},
	616: {Icon: "cloud", Color: "#6b7280", BgColor: "bg-gray-300"},
	620: {Icon: "snowflake", Color: "#e5e7eb", BgColor: "bg-gray-100"},
	621: {Icon: "snowflake", Color: "#d1d5db", BgColor: "bg-gray-200"},
	622: {Icon: "snowflake", Color: "#9ca3af", BgColor: "bg-gray-300"},

	// Atmosphere (700-781)
	701: {Icon: "eye", Color: "#9ca3af", BgColor: "bg-gray-200"},
	711: {Icon: "waves", Color: "#6b7280", BgColor: "bg-gray-300"},
	721: {Icon: "eye", Color: "#a3a3a3", BgColor: "bg-neutral-200"},
	731: {Icon: "wind", Color: "#d97706", BgColor: "bg-amber-200"},
	741: {Icon: "cloudy", Color: "#9ca3af", BgColor: "bg-gray-200"},
	751: {Icon: "wind", Color: "#d97706", BgColor: "bg-amber-300"},
	761: {Icon: "wind", Color: "#92400e", BgColor: "bg-amber-400"},
	762: {Icon: "triangle", Color: "#dc2626", BgColor: "bg-red-200"},
	771: {Icon: "wind", Color: "#4b5563", BgColor: "bg-gray-300"},
	781: {Icon: "wind", Color: "#dc2626", BgColor: "bg-red-300"},

	// Clear (800)
	800: {Icon: "sun", Color: "#f59e0b", BgColor: "bg-yellow-100"},

	// Clouds (801-804)
	801: {Icon: "cloud-sun", Color: "#f59e0b", BgColor: "bg-yellow-100"},
	802: {Icon: "cloudy", Color: "#9ca3af", BgColor: "bg-gray-100"},
	803: {Icon: "cloudy", Color: "#6b7280", BgColor: "bg-gray-200"},
	804: {Icon: "cloudy", Color: "#4b5563", BgColor: "bg-gray-300"},
}

// unknownIcon is the fallback for weather codes outside the table.
var unknownIcon = IconMapping{Icon: "cloud", Color: "#9ca3af", BgColor: "bg-gray-200"}

// IconFor returns the display mapping for a weather code. Clear sky and few
// clouds swap to a moon icon at night.
func IconFor(weatherCode int, night bool) IconMapping {
	mapping, ok := iconMap[weatherCode]
	if !ok {
		return unknownIcon
	}
	if night {
		switch weatherCode {
		case 800:
			return IconMapping{Icon: "moon", Color: "#ddd6fe", BgColor: "bg-violet-100"}
		case 801:
			return IconMapping{Icon: "moon", Color: "#c4b5fd", BgColor: "bg-violet-200"}
		}
	}
	return mapping
}

// IsNight reports whether a provider icon code refers to a night variant
// ("01n", "10n", ...).
func IsNight(iconCode string) bool {
	return strings.HasSuffix(iconCode, "n")
}

// Display bundles everything the frontend needs to render one condition.
type Display struct {
	IconMapping
	Night       bool   `json:"night"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// DisplayFor resolves the display hints for a condition record.
func DisplayFor(cond Condition) Display {
	night := IsNight(cond.Icon)
	return Display{
		IconMapping: IconFor(cond.ID, night),
		Night:       night,
		Main:        cond.Main,
		Description: cond.Description,
	}
}
