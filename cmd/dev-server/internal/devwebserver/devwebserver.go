// Package devwebserver builds arena games for js/wasm on demand and
// serves them to the browser.
package devwebserver

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const (
	packagePath = "github.com/gamearena/gamearena/cmd/dev-server/internal/devwebserver"
)

var flagSet = flag.NewFlagSet("serve", flag.ExitOnError)

// Serve will serve a js/wasm build of the requested package to the web
// browser. This function will block until exit.
func Serve() {
	tags := flagSet.String("tags", "", "a list of build tags to consider satisfied during the build")
	port := flagSet.String("port", ":8080", "address to listen on")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	args := Arguments{}
	args.Port = *port
	args.Directory = "."
	args.Tags = *tags
	arguments = args

	// Get default resources
	var err error
	wasmJSPath, err = findWasmJS()
	if err != nil {
		log.Fatal(err)
	}
	indexHTMLPath, err = getDefaultIndexHTMLPath(args.Directory)
	if err != nil {
		log.Fatal(err)
	}

	// Start server
	fmt.Printf("Listening on http://localhost%s...\n", args.Port)
	http.HandleFunc("/", handle)
	if err := http.ListenAndServe(args.Port, nil); err != nil {
		log.Fatal(err)
	}
}

var wasmJSPath string

var indexHTMLPath string

var (
	arguments    Arguments
	tmpOutputDir = ""
)

type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "debug"
}

func handle(w http.ResponseWriter, r *http.Request) {
	output, err := ensureTmpOutputDir()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dir := arguments.Directory
	tags := arguments.Tags

	// Get path and package
	upath := r.URL.Path[1:]
	pkg := filepath.Dir(upath)
	fpath := filepath.Join(".", filepath.Base(upath))
	if strings.HasSuffix(r.URL.Path, "/") {
		fpath = filepath.Join(fpath, "index.html")
	}

	parts := strings.Split(upath, "/")
	isAsset := len(parts) > 0 && parts[0] == "asset"

	if isAsset {
		// Load asset
		log.Print("serving asset: " + upath)
		switch ext := filepath.Ext(upath); ext {
		case ".ttf",
			".toml",
			".png",
			".json":
			http.ServeFile(w, r, upath)
		}
		return
	}

	switch filepath.Base(fpath) {
	case "index.html":
		log.Print("serving index.html: " + indexHTMLPath)
		http.ServeFile(w, r, indexHTMLPath)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + wasmJSPath)
		http.ServeFile(w, r, wasmJSPath)
	case "main.wasm":
		// Build once per server run, then serve the cached artifact.
		wasmPath := filepath.Join(output, "main.wasm")
		if _, err := os.Stat(wasmPath); os.IsNotExist(err) {
			args := []string{"build", "-o", wasmPath}
			if tags != "" {
				args = append(args, "-tags", tags)
			}
			args = append(args, "./"+pkg)
			log.Print("go ", strings.Join(args, " "))
			cmdBuild := exec.Command(gobin(), args...)
			cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
			cmdBuild.Dir = dir
			out, err := cmdBuild.CombinedOutput()
			if err != nil {
				log.Print(err)
				log.Print(string(out))
				http.Error(w, string(out), http.StatusInternalServerError)
				return
			}
			if len(out) > 0 {
				log.Print(string(out))
			}
		}

		f, err := os.Open(wasmPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	}
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

// findWasmJS locates the wasm_exec.js shipped with the active Go
// toolchain. Go 1.24 moved it from misc/wasm to lib/wasm.
func findWasmJS() (string, error) {
	root := runtime.GOROOT()
	candidates := []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Errorf("wasm_exec.js not found under %s", root)
}

func ensureTmpOutputDir() (string, error) {
	if tmpOutputDir != "" {
		return tmpOutputDir, nil
	}

	tmp, err := os.MkdirTemp("", "")
	if err != nil {
		return "", errors.WithStack(err)
	}
	tmpOutputDir = tmp
	return tmpOutputDir, nil
}

var (
	cmdDir string
	cmdErr error
)

func computeCmdSourceDir(gameDir string) (string, error) {
	if cmdDir == "" && cmdErr == nil {
		cmdDir, cmdErr = computeCmdSourceDirUncached(gameDir)
	}
	return cmdDir, cmdErr
}

func computeCmdSourceDirUncached(gameDir string) (string, error) {
	currentDir, err := filepath.Abs(gameDir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	cfg := &packages.Config{
		Dir: currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if len(pkgs) == 0 {
		return "", errors.New("unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("cannot find *.go files in: " + currentDir)
	}
	dir := filepath.Dir(pkg.GoFiles[0])
	return dir, nil
}

func getDefaultIndexHTMLPath(gameDir string) (string, error) {
	const baseName = "index.html"
	// Serve the default page that ships beside this package.
	dir, err := computeCmdSourceDir(gameDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName), nil
}
