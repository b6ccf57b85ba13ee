package tailwind

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cli/safeexec"
)

var (
	ErrNoOutDir          = errors.New("'" + OUT_DIR_ENV + "' not provided")
	ErrInvalidSrcPath    = errors.New("the source dir contained invalid unicode")
	ErrMissingStylesheet = errors.New("specified a css path but it does not exist")
	ErrInstall           = errors.New("could not install tailwind")
	ErrCompile           = errors.New("could not build styles")
)

// Result carries the directives of a finished build: where the consuming
// application finds the generated artifacts and which inputs should
// trigger a rebuild when they change
type Result struct {
	// Jit reports which of the two pipelines ran
	Jit bool

	// StylePath is the absolute path of the compiled, minified stylesheet,
	// only set when Jit is false
	StylePath string

	// JitConfigPath is the absolute path of the generated config script,
	// JitSrc the cdn the page loads tailwind from, only set when Jit is true
	JitConfigPath string
	JitSrc        string

	// RerunEnv and RerunPaths list the environment variables and files a
	// build system should watch to decide when this build step has to run
	// again
	RerunEnv   []string
	RerunPaths []string

	Warnings []string
}

func (r *Result) warn(message string) {
	fmt.Println("[TAILWIND] warning:", message)
	r.Warnings = append(r.Warnings, message)
}

// all artifacts live under a single output directory that doubles as a
// cache between builds
type artifactPaths struct {
	packageJson string
	nodeModules string
	twConfig    string
	styleIn     string
	styleOut    string
	jitConfig   string
}

func artifacts(outDir string) artifactPaths {
	return artifactPaths{
		packageJson: filepath.Join(outDir, "package.json"),
		nodeModules: filepath.Join(outDir, "node_modules"),
		twConfig:    filepath.Join(outDir, "tailwind.config.js"),
		styleIn:     filepath.Join(outDir, "style.in.css"),
		styleOut:    filepath.Join(outDir, "style.css"),
		jitConfig:   filepath.Join(outDir, "jit_config.js"),
	}
}

type commandRunner interface {
	Run(dir, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(dir, name string, args ...string) error {
	path, err := safeexec.LookPath(name)

	if err != nil {
		return err
	}

	cmd := exec.Command(path, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()

	if err != nil {
		fmt.Println("[TAILWIND] ["+name+"]", strings.TrimSpace(string(output)))
		return err
	}

	return nil
}

// Build captures the process environment and runs BuildEnv with it
func (c *Config) Build() (*Result, error) {
	return c.BuildEnv(Capture())
}

// BuildDefault builds tailwind with the default config
func BuildDefault() (*Result, error) {
	return New().Build()
}

// BuildEnv runs one of the two pipelines: release builds (or a config with
// Always set) install the toolchain and compile a minified stylesheet,
// everything else writes a jit config for the play cdn. every failure is
// returned as an error, deciding whether it aborts the surrounding build
// is up to the caller.
func (c *Config) BuildEnv(env Environment) (*Result, error) {
	result := &Result{RerunEnv: []string{PROFILE_ENV}}

	if !env.HasOutDir {
		return nil, ErrNoOutDir
	}

	srcDir, err := filepath.Abs(c.srcDir)

	if err != nil {
		return nil, fmt.Errorf("could not resolve source dir: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(srcDir); err == nil {
		srcDir = resolved
	}

	profile, warning := env.DetectProfile()

	if warning != "" {
		result.warn(warning)
	}

	if profile == ProfileRelease || c.always {
		if c.cssPath != "" {
			result.RerunPaths = append(result.RerunPaths, c.cssPath)

			// checked before anything else runs so a missing stylesheet
			// cannot leave a half installed toolchain behind
			if _, err := os.Stat(c.cssPath); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingStylesheet, c.cssPath)
			}
		}

		if err := c.installTailwind(env.OutDir, srcDir); err != nil {
			return nil, err
		}

		if err := c.compileTailwind(env.OutDir, result); err != nil {
			return nil, err
		}
	} else {
		if err := c.setupJit(env.OutDir, srcDir, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *Config) installTailwind(outDir, srcDir string) error {
	paths := artifacts(outDir)

	if _, err := os.Stat(paths.packageJson); err != nil {
		fmt.Println("[TAILWIND] creating package.json:", paths.packageJson)

		if err := os.WriteFile(paths.packageJson, []byte(DEFAULT_PACKAGE_JSON), 0666); err != nil {
			return err
		}
	} else {
		fmt.Println("[TAILWIND] package.json already exists, not creating another one")
	}

	if _, err := os.Stat(paths.nodeModules); err != nil {
		fmt.Println("[TAILWIND] installing tailwind")

		if err := c.runner.Run(outDir, "npm", "install"); err != nil {
			return fmt.Errorf("%w: %v", ErrInstall, err)
		}
	} else {
		fmt.Println("[TAILWIND] node_modules already exists, not installing")
	}

	config, err := renderConfig(c.config, srcDir)

	if err != nil {
		return err
	}

	// always rewritten, the config document may have changed between builds
	fmt.Println("[TAILWIND] writing tailwind config:", paths.twConfig)

	return os.WriteFile(paths.twConfig, []byte("module.exports = "+config+"\n"), 0666)
}

func (c *Config) compileTailwind(outDir string, result *Result) error {
	paths := artifacts(outDir)

	if c.cssPath != "" {
		if strings.HasSuffix(c.cssPath, ".scss") {
			fmt.Println("[TAILWIND] transpiling", c.cssPath)

			css, err := transpileScss(c.cssPath)

			if err != nil {
				return err
			}

			if err := os.WriteFile(paths.styleIn, []byte(css), 0666); err != nil {
				return err
			}
		} else {
			fmt.Println("[TAILWIND] copying", c.cssPath)

			if err := copyFile(c.cssPath, paths.styleIn); err != nil {
				return err
			}
		}
	} else if _, err := os.Stat("style.css"); err == nil {
		fmt.Println("[TAILWIND] copying style.css (default path)")

		if err := copyFile("style.css", paths.styleIn); err != nil {
			return err
		}
	} else {
		fmt.Println("[TAILWIND] creating default style.css")

		if err := os.WriteFile(paths.styleIn, []byte(DEFAULT_STYLE_CSS), 0666); err != nil {
			return err
		}
	}

	if err := c.runner.Run(outDir, "npx", "tailwindcss", "-i", paths.styleIn, "-o", paths.styleOut, "--minify"); err != nil {
		return fmt.Errorf("%w: %v", ErrCompile, err)
	}

	style, err := filepath.Abs(paths.styleOut)

	if err != nil {
		return err
	}

	result.StylePath = style

	return nil
}

func (c *Config) setupJit(outDir, srcDir string, result *Result) error {
	paths := artifacts(outDir)

	config, err := renderConfig(c.config, srcDir)

	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.jitConfig, []byte("tailwind.config = "+config+"\n"), 0666); err != nil {
		return err
	}

	path, err := filepath.Abs(paths.jitConfig)

	if err != nil {
		return err
	}

	result.Jit = true
	result.JitConfigPath = path
	result.JitSrc = c.cdnSrc

	return nil
}

func copyFile(from, to string) error {
	raw, err := os.ReadFile(from)

	if err != nil {
		return err
	}

	return os.WriteFile(to, raw, 0666)
}
