package windgen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html",
		`<div class="container mx-auto p-4 md:p-8">hello</div>`)

	result, err := Generate(Config{
		Content:   []string{filepath.Join(dir, "*.html")},
		Container: ContainerConfig{Center: true},
	})
	require.NoError(t, err)

	want := `.container {
  width: 100%;
  margin-left: auto;
  margin-right: auto;
}

@media (min-width: 640px) {
  .container {
    max-width: 640px;
  }
}

@media (min-width: 768px) {
  .container {
    max-width: 768px;
  }
}

@media (min-width: 1024px) {
  .container {
    max-width: 1024px;
  }
}

@media (min-width: 1280px) {
  .container {
    max-width: 1280px;
  }
}

@media (min-width: 1536px) {
  .container {
    max-width: 1536px;
  }
}

.mx-auto {
  margin-left: auto;
  margin-right: auto;
}

.p-4 {
  padding: 1rem;
}

@media (min-width: 768px) {
  .md\:p-8 {
    padding: 2rem;
  }
}
`
	assert.Equal(t, want, result.CSS)
	assert.Equal(t, 1, result.Stats.FilesScanned)
	assert.Zero(t, result.Collisions)
}

func TestGenerateRepeatedRunsAreIdentical(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<p class="p-4 hover:bg-blue-500 flex">`)
	writeFile(t, dir, "b.html", `<p class="flex -mt-2 w-[32rem]">`)

	engine, err := New(Config{Content: []string{filepath.Join(dir, "*.html")}})
	require.NoError(t, err)

	first, err := engine.Generate()
	require.NoError(t, err)
	second, err := engine.Generate()
	require.NoError(t, err)

	assert.Equal(t, first.CSS, second.CSS)
	assert.NotEmpty(t, first.CSS)
}

func TestGeneratePreflightComesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", `<div class="p-4">`)

	result, err := Generate(Config{
		Content:   []string{filepath.Join(dir, "*.html")},
		Preflight: true,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.CSS, "*, ::before, ::after {"))
	assert.Less(t,
		strings.Index(result.CSS, "box-sizing"),
		strings.Index(result.CSS, ".p-4"))
}

func TestGenerateUnknownStringsProduceNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md",
		"# Title\n\nplain prose with no utility classes at all\n")

	result, err := Generate(Config{Content: []string{filepath.Join(dir, "*.md")}})
	require.NoError(t, err)
	assert.Empty(t, result.CSS)
	assert.Positive(t, result.Candidates)
}

func TestGenerateThemeExtend(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", `<div class="bg-brand p-128">`)

	result, err := Generate(Config{
		Content: []string{filepath.Join(dir, "*.html")},
		Theme: ThemeSpec{Extend: map[string]map[string]string{
			"colors":  {"brand": "#bada55"},
			"spacing": {"128": "32rem"},
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, result.CSS, ".bg-brand {\n  background-color: #bada55;\n}")
	assert.Contains(t, result.CSS, ".p-128 {\n  padding: 32rem;\n}")
}

func TestGenerateThemeReplaceDropsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", `<div class="bg-brand bg-blue-500">`)

	result, err := Generate(Config{
		Content: []string{filepath.Join(dir, "*.html")},
		Theme: ThemeSpec{Replace: map[string]map[string]string{
			"colors": {"brand": "#bada55"},
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, result.CSS, ".bg-brand")
	assert.NotContains(t, result.CSS, "bg-blue-500")
}

func TestGenerateCustomPlugin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", `<div class="btn hover:btn">`)

	btn := stubPlugin{name: "buttons", install: func(api PluginAPI) error {
		radius, err := api.Resolve("borderRadius", "DEFAULT")
		if err != nil {
			return err
		}
		api.Register("btn", "", func(v Value) ([]Declaration, bool) {
			return []Declaration{
				{Property: "display", Value: "inline-flex"},
				{Property: "border-radius", Value: radius},
			}, true
		})
		return nil
	}}

	result, err := Generate(Config{
		Content: []string{filepath.Join(dir, "*.html")},
		Plugins: []Plugin{btn},
	})
	require.NoError(t, err)

	assert.Contains(t, result.CSS, ".btn {\n  display: inline-flex;\n  border-radius: 0.25rem;\n}")
	assert.Contains(t, result.CSS, `.hover\:btn:hover {`)
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		substr []string
	}{
		{
			name:   "no content",
			config: Config{},
			substr: []string{"content"},
		},
		{
			name: "bad dark mode",
			config: Config{
				Content:  []string{"*.html"},
				DarkMode: "auto",
			},
			substr: []string{"dark-mode", "auto"},
		},
		{
			name: "collects multiple problems",
			config: Config{
				DarkMode: "auto",
				Theme: ThemeSpec{Extend: map[string]map[string]string{
					"colors": {"brand": "not } css"},
				}},
			},
			substr: []string{"content", "dark-mode", "theme.extend.colors.brand"},
		},
		{
			name: "reserved theme key",
			config: Config{
				Content: []string{"*.html"},
				Theme: ThemeSpec{Replace: map[string]map[string]string{
					"extend": {"x": "1px"},
				}},
			},
			substr: []string{"reserved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			require.Error(t, err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			for _, s := range tt.substr {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestGenerateMissingGlobBase(t *testing.T) {
	result, err := Generate(Config{
		Content: []string{filepath.Join(t.TempDir(), "nothing", "*.html")},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesScanned)
	assert.Empty(t, result.CSS)
}
