package root

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ronin/internal/config"
	"ronin/internal/gate"
	"ronin/internal/store"
	"ronin/internal/tracker"
	"ronin/internal/vault"
)

// app bundles everything a command needs: config, the vault, and the
// components bound to it. Construction never fails on storage problems —
// the vault degrades to memory-only and the session just won't persist.
type app struct {
	cfg   config.Config
	vault *vault.Vault

	store    *store.Store
	gate     *gate.Gate
	logPose  *tracker.LogPoseTracker
	treasury *tracker.Treasury
	memory   *tracker.MemoryCard
}

func openApp() (*app, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	vaultPath := cfg.VaultPath
	if vaultPath == "" {
		vaultPath, err = vault.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	v := vault.Open(vaultPath, newLogger())
	a := &app{
		cfg:      cfg,
		vault:    v,
		store:    store.New(v),
		gate:     gate.New(v),
		logPose:  tracker.NewLogPose(v),
		treasury: tracker.NewTreasury(v),
		memory:   tracker.NewMemory(v),
	}
	cleanup := func() {
		_ = v.Close()
	}
	return a, cleanup, nil
}

// newLogger builds the stderr logger the vault reports swallowed storage
// failures on. Warn and up only, so normal runs stay quiet.
func newLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core)
}

// requireRonin guards the edit surfaces the site hid behind its gate. This
// is politeness, not protection: the data sits in a local file either way.
func requireRonin(a *app) error {
	if !a.gate.Authenticated() {
		return errors.New("the gate is closed — run 'ronin login' first")
	}
	return nil
}
