package executor

import (
	"os"
	"path/filepath"
	"plugin"
	"strings"
)

// apiVersion mirrors PURC_API_VERSION_STRING's role in exe_class.c/
// exe_func.c's directory layout (`purc-<version>/`), fixed at this
// module's own version rather than the upstream interpreter's.
const apiVersion = "1.0"

// executorPathEnv is this port's analogue of PURC_ENVV_EXECUTOR_PATH.
const executorPathEnv = "FOIL_EXECUTOR_PATH"

// searchDirs returns the directory sequence CLASS/FUNC/EXTERNAL search,
// in order: each ':'-separated entry of FOIL_EXECUTOR_PATH, then the
// fixed system directories exe_class.c's _load_module walks
// (original_source/Source/PurC/executors/exe_class.c).
func searchDirs() []string {
	var dirs []string
	if env := os.Getenv(executorPathEnv); env != "" {
		for _, dir := range strings.FieldsFunc(env, func(r rune) bool { return r == ':' || r == ';' }) {
			if filepath.IsAbs(dir) {
				dirs = append(dirs, dir)
			}
		}
	}
	for _, prefix := range []string{"/usr/local/lib", "/usr/lib", "/lib"} {
		dirs = append(dirs, filepath.Join(prefix, "purc-"+apiVersion))
	}
	return dirs
}

// pluginFileName builds the shared-object file name for module, mirroring
// exe_class.c's "libpurc-executor-<module>.so" naming (renamed to this
// module's own prefix).
func pluginFileName(module string) string {
	return "libfoil-executor-" + module + ".so"
}

// loadSymbol opens module's shared object from the search path and looks
// up symbolName within it (Go's plugin package standing in for dlopen/
// dlsym, as no ecosystem plugin loader appears anywhere in the retrieval
// pack).
func loadSymbol(module, symbolName string) (plugin.Symbol, error) {
	fname := pluginFileName(module)
	var lastErr error
	for _, dir := range searchDirs() {
		p, err := plugin.Open(filepath.Join(dir, fname))
		if err != nil {
			lastErr = err
			continue
		}
		sym, err := p.Lookup(symbolName)
		if err != nil {
			return nil, errf(BadSystemCall, "symbol %q not found in %s: %v", symbolName, fname, err)
		}
		return sym, nil
	}
	if lastErr == nil {
		lastErr = errf(BadSystemCall, "no search directories configured (set %s)", executorPathEnv)
	}
	return nil, errf(BadSystemCall, "failed to load %s: %v", fname, lastErr)
}
