// Package pipeline drives a launcher invocation from configuration load to
// process hand-off:
//
//	init → config-loaded → registry-loaded → log-ready →
//	artifacts-validated → plan-built → launched
//
// Each step consumes the typed result of the previous ones. The first
// failure aborts the run with an *AbortError; nothing is retried.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mfulz/rlaunch/internal/artifact"
	"github.com/mfulz/rlaunch/internal/config"
	"github.com/mfulz/rlaunch/internal/configloader"
	"github.com/mfulz/rlaunch/internal/interpreter"
	"github.com/mfulz/rlaunch/internal/launchcli"
	"github.com/mfulz/rlaunch/internal/logdir"
	"github.com/mfulz/rlaunch/internal/logging"
	"github.com/mfulz/rlaunch/internal/plan"
	"github.com/mfulz/rlaunch/internal/registry"
)

// EnvRunID carries the run id into the launched process.
const EnvRunID = "RLAUNCH_RUN_ID"

// Options select the inputs of a run. Empty fields fall back to the
// environment and the configuration file.
type Options struct {
	WorkDir      string // base for relative paths; default: current directory
	ConfigPath   string
	RegistryPath string
	ScriptPath   string
	LogLevel     string                 // overrides launcher.log.level
	Window       *plan.WindowVisibility // overrides launcher.window
	Wait         *bool                  // overrides launcher.wait
	Starter      launchcli.Starter      // default: launchcli.Exec
}

// Result is the outcome of a run.
type Result struct {
	State    State
	RunID    string
	Config   *config.Config
	Location logdir.Location
	Plan     plan.LaunchPlan
	Launch   launchcli.Result
}

// Run resolves, validates and launches.
func Run(opts Options) (*Result, error) {
	res, err := Prepare(opts)
	if err != nil {
		return res, err
	}

	starter := opts.Starter
	if starter == nil {
		starter = launchcli.Exec{}
	}

	log := logging.Log.With("run_id", res.RunID)
	log.Infof("[pipeline] launching %s %v", res.Plan.Interpreter, res.Plan.Args())

	lr, err := starter.Launch(res.Plan)
	if err != nil {
		return res, abort(res, err)
	}
	res.Launch = lr
	res.State = Launched

	if lr.Waited {
		log.Infof("[pipeline] PID %d exited with code %d", lr.PID, lr.ExitCode)
	} else {
		log.Infof("[pipeline] handed off PID %d, output in %s", lr.PID, res.Plan.Stdout)
	}
	return res, nil
}

// Prepare runs every step up to and including plan-built without starting
// anything. The log directory is created; the log file is not.
func Prepare(opts Options) (*Result, error) {
	res := &Result{State: Init, RunID: uuid.NewString()}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return res, abort(res, fmt.Errorf("cannot determine working directory: %w", err))
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return res, abort(res, err)
	}

	// config
	cfgPath := configloader.ResolvePath(opts.ConfigPath, config.EnvPath, filepath.FromSlash(config.DefaultPath), workDir)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return res, abort(res, err)
	}
	profile, err := interpreter.Get(cfg.Launcher.Interpreter)
	if err != nil {
		return res, abort(res, &configloader.ParseError{Path: cfgPath, Key: "launcher.interpreter", Err: err})
	}
	if err := initLogging(cfg, opts, workDir); err != nil {
		return res, abort(res, err)
	}
	res.Config = cfg
	res.State = ConfigLoaded

	log := logging.Log.With("run_id", res.RunID)
	log.Debugf("[pipeline] loaded config %s", cfgPath)

	// registry
	regPath := configloader.ResolvePath(opts.RegistryPath, registry.EnvPath, filepath.FromSlash(registry.DefaultPath), workDir)
	reg, err := registry.Load(regPath)
	if err != nil {
		return res, abort(res, err)
	}
	res.State = RegistryLoaded
	log.Debugf("[pipeline] loaded registry %s: %v", regPath, reg.Names())

	// log location
	loc, err := logdir.Resolve(cfg, workDir)
	if err != nil {
		return res, abort(res, err)
	}
	res.Location = loc
	res.State = LogReady
	log.Debugf("[pipeline] log file %s", loc.Path())

	// artifacts
	installDir, ok := reg.Lookup(profile.Name())
	if !ok || installDir == "" {
		return res, abort(res, &artifact.ExecutableNotFoundError{Entry: profile.Name()})
	}
	// the child runs in workDir, so everything it is given is anchored there
	if !filepath.IsAbs(installDir) {
		installDir = filepath.Join(workDir, installDir)
	}
	script := opts.ScriptPath
	if script == "" {
		script = cfg.Launcher.Script
	}
	if !filepath.IsAbs(script) {
		script = filepath.Join(workDir, script)
	}
	arts, err := artifact.Validate(profile.Executable(installDir), script)
	if err != nil {
		return res, abort(res, err)
	}
	res.State = ArtifactsValidated

	// plan
	window := cfg.Window()
	if opts.Window != nil {
		window = *opts.Window
	}
	wait := cfg.Launcher.Wait
	if opts.Wait != nil {
		wait = *opts.Wait
	}
	res.Plan = plan.Build(arts, profile.Flags(), loc.Path(), plan.Options{
		Window: window,
		Wait:   wait,
		Dir:    workDir,
		Env:    map[string]string{EnvRunID: res.RunID},
	})
	res.State = PlanBuilt
	return res, nil
}

func initLogging(cfg *config.Config, opts Options, workDir string) error {
	logCfg := cfg.Launcher.Log
	if opts.LogLevel != "" {
		logCfg.Level = opts.LogLevel
	}
	if logCfg.FilePath != "" && !filepath.IsAbs(logCfg.FilePath) {
		logCfg.FilePath = filepath.Join(workDir, logCfg.FilePath)
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	return nil
}

func abort(res *Result, err error) error {
	ae := &AbortError{State: res.State, Err: err}
	res.State = Aborted
	logging.Log.With("run_id", res.RunID).Debugf("[pipeline] aborted after %s: %v", ae.State, err)
	return ae
}
