package windgen

// defaultTheme is the built-in token scale. It is never mutated: buildTheme
// copies it before applying user overrides.
var defaultTheme = map[string]map[string]string{
	"breakpoints": {
		"sm":  "640px",
		"md":  "768px",
		"lg":  "1024px",
		"xl":  "1280px",
		"2xl": "1536px",
	},

	// Quarter-rem spacing scale.
	"spacing": {
		"0":  "0",
		"px": "1px",
		"1":  "0.25rem",
		"2":  "0.5rem",
		"3":  "0.75rem",
		"4":  "1rem",
		"5":  "1.25rem",
		"6":  "1.5rem",
		"8":  "2rem",
		"10": "2.5rem",
		"12": "3rem",
		"16": "4rem",
		"20": "5rem",
		"24": "6rem",
		"32": "8rem",
		"40": "10rem",
		"48": "12rem",
		"64": "16rem",
	},

	"colors": {
		"transparent": "transparent",
		"current":     "currentColor",
		"black":       "#000000",
		"white":       "#ffffff",

		"gray-100": "#f3f4f6",
		"gray-200": "#e5e7eb",
		"gray-300": "#d1d5db",
		"gray-400": "#9ca3af",
		"gray-500": "#6b7280",
		"gray-600": "#4b5563",
		"gray-700": "#374151",
		"gray-800": "#1f2937",
		"gray-900": "#111827",

		"red-500":  "#ef4444",
		"red-600":  "#dc2626",
		"red-700":  "#b91c1c",
		"blue-400": "#60a5fa",
		"blue-500": "#3b82f6",
		"blue-600": "#2563eb",
		"blue-700": "#1d4ed8",

		"green-500":  "#22c55e",
		"green-600":  "#16a34a",
		"yellow-500": "#eab308",
	},

	"fontSize": {
		"xs":   "0.75rem",
		"sm":   "0.875rem",
		"base": "1rem",
		"lg":   "1.125rem",
		"xl":   "1.25rem",
		"2xl":  "1.5rem",
		"3xl":  "1.875rem",
		"4xl":  "2.25rem",
	},

	"fontWeight": {
		"normal":   "400",
		"medium":   "500",
		"semibold": "600",
		"bold":     "700",
	},

	"borderRadius": {
		"none":    "0",
		"sm":      "0.125rem",
		"DEFAULT": "0.25rem",
		"md":      "0.375rem",
		"lg":      "0.5rem",
		"full":    "9999px",
	},

	"shadows": {
		"sm":      "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"DEFAULT": "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
		"md":      "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"lg":      "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"none":    "none",
	},
}

// sizingExtras augments the spacing scale for width/height utilities.
// User spacing overrides win when they define the same key.
var sizingExtras = map[string]string{
	"auto":   "auto",
	"full":   "100%",
	"screen": "100vh",
	"min":    "min-content",
	"max":    "max-content",
	"fit":    "fit-content",
}
