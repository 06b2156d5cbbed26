package interpreter

import "path/filepath"

func init() {
	Register(rscript{})
	Register(python{})
}

// rscript runs R scripts through Rscript, which is much lighter than R CMD BATCH.
type rscript struct{}

func (rscript) Name() string { return "r" }

func (rscript) Executable(installDir string) string {
	return filepath.Join(installDir, "bin", exe("Rscript"))
}

// --vanilla implies --no-save --no-restore --no-environ --no-site-file
// --no-init-file (and --no-Rconsole on Windows).
func (rscript) Flags() []string { return []string{"--vanilla"} }

// python runs scripts in isolated mode with unbuffered output so the log is
// written as the script runs.
type python struct{}

func (python) Name() string { return "python" }

func (python) Executable(installDir string) string {
	return filepath.Join(installDir, exe("python"))
}

func (python) Flags() []string { return []string{"-I", "-u"} }
