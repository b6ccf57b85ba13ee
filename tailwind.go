// Package tailwind prepares tailwindcss for inclusion in a go web application.
// in development it sets up the play cdn with a generated jit config, for
// release builds it installs the tailwind toolchain and compiles a minified
// stylesheet into the build output directory.
package tailwind

const DEFAULT_CDN_SRC = "https://cdn.tailwindcss.com"

const DEFAULT_PACKAGE_JSON = `{
    "name": "include-tailwind",
    "version": "1.0.0",
    "description": "the autogenerated package.json for include-tailwind",
    "devDependencies": {
        "tailwindcss": "^3.4.4"
    }
}
`

const DEFAULT_STYLE_CSS = `
@tailwind base;
@tailwind components;
@tailwind utilities;
`

// Config holds everything a build needs, it is assembled once by New
// and never changes afterwards
type Config struct {
	cssPath string
	always  bool
	config  map[string]any
	cdnSrc  string
	srcDir  string

	runner commandRunner
}

type Option func(*Config)

func New(options ...Option) *Config {
	c := &Config{
		config: defaultTailwindConfig(),
		cdnSrc: DEFAULT_CDN_SRC,
		srcDir: "./src",
		runner: execRunner{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// the config used by both the jit and the compiled build,
// "{src_dir}" expands to the resolved source directory of the project
func defaultTailwindConfig() map[string]any {
	return map[string]any{
		"content": []any{SRC_DIR_TOKEN + "/**/*.{html,js,go}"},
		"theme":   map[string]any{"extend": map[string]any{}},
		"plugins": []any{},
	}
}

// WithPath changes the path the input stylesheet is loaded from.
// specifying a file makes it required, a file ending in .scss is
// transpiled with dart sass before it is handed to tailwind.
// an empty path looks for a style.css at the root of the project
// and falls back to the default:
//
//	@tailwind base;
//	@tailwind components;
//	@tailwind utilities;
func WithPath(path string) Option {
	return func(c *Config) {
		c.cssPath = path
	}
}

// WithCdnSrc specifies the cdn used as a source for the jit builds
func WithCdnSrc(src string) Option {
	return func(c *Config) {
		c.cdnSrc = src
	}
}

// WithConfig replaces the tailwind config document, it has to be a
// json serializable value as it is shared by the jit and the compiled
// build ("{src_dir}" expands to the resolved source directory)
func WithConfig(config map[string]any) Option {
	return func(c *Config) {
		c.config = config
	}
}

// WithSrcDir changes the directory "{src_dir}" resolves to,
// the default is ./src
func WithSrcDir(dir string) Option {
	return func(c *Config) {
		c.srcDir = dir
	}
}

// Always compiles tailwind on every build and never uses the jit setup,
// even outside of release builds
func Always() Option {
	return func(c *Config) {
		c.always = true
	}
}
