package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/clonecfg/internal/logging"
)

// Watch reloads the configuration whenever the file changes on disk.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()

		// Our own Save already holds the right config in memory.
		if m.skipNextReload {
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("failed to sync viper config after save")
			}
			m.notifyCallbacksLocked()
			return
		}

		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked must be called with m.mu held; it releases the lock
// before running callbacks.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

// OnConfigChange registers callback for reloads.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}
