// Package localfile implements the bundled-defaults tweak provider: a
// read-only tweak source backed by a local JSON or YAML file, with optional
// hot reload when the file changes.
package localfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/tweaks"
)

const (
	defaultRetryInterval       = time.Second
	maxRetriesIfFileNotChanged = 2
)

// Provider is a read-only tweak source backed by a local file: a JSON or
// YAML document mapping variable names to scalar values. It normally sits at
// the bottom of a stack, supplying bundled defaults below ephemeral launch
// flags and persisted stores.
//
// Entries whose values are not booleans, strings, or numbers are skipped at
// load time with a warning. If watching is enabled, the provider reloads the
// file when it changes; a file that is momentarily invalid (for instance,
// mid-copy) keeps the previous contents until a reload succeeds.
type Provider struct {
	filePath      string
	retryInterval time.Duration
	loggers       ldlog.Loggers
	watcher       *fsnotify.Watcher
	closeCh       chan struct{}
	closeOnce     sync.Once

	lock   sync.RWMutex
	values map[string]tweaks.Value
}

// NewProvider creates the Provider and reads the initial file contents. If
// watch is true it also starts watching the file for changes; call Close to
// stop watching.
func NewProvider(filePath string, watch bool, loggers ldlog.Loggers) (*Provider, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, errCannotOpenTweaksFile(filePath, err)
	}

	p := &Provider{
		filePath:      filePath,
		retryInterval: defaultRetryInterval,
		loggers:       loggers,
		closeCh:       make(chan struct{}),
	}
	p.loggers.SetPrefix("[LocalTweaks]")

	values, err := readTweaksFile(filePath, p.loggers)
	if err != nil {
		return nil, err
	}
	p.setValues(values)

	if watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, errCreateWatcherFailed(filePath, err) // COVERAGE: can't cause this condition in unit tests
		}
		if err := watcher.Add(filePath); err != nil {
			return nil, errCreateWatcherFailed(filePath, err) // COVERAGE: can't cause this condition in unit tests
		}
		p.watcher = watcher
		go p.run(fileInfo)
	}

	return p, nil
}

// IsFeatureEnabled returns true only if the file holds a boolean true under
// the feature key.
func (p *Provider) IsFeatureEnabled(feature string) bool {
	value, ok := p.value(feature)
	return ok && value.Type() == tweaks.BoolType && value.BoolValue()
}

// TweakWith resolves the typed value stored under the variable key.
func (p *Provider) TweakWith(feature, variable string) (tweaks.Tweak, bool) {
	value, ok := p.value(variable)
	if !ok {
		return tweaks.Tweak{}, false
	}
	return tweaks.Tweak{Feature: feature, Variable: variable, Value: value}, true
}

// ActiveVariation always returns ("", false); file defaults do not support
// multi-arm experiment assignment.
func (p *Provider) ActiveVariation(experiment string) (string, bool) {
	return "", false
}

// SetLoggers replaces the loggers used for reload diagnostics.
func (p *Provider) SetLoggers(loggers ldlog.Loggers) {
	p.loggers = loggers
	p.loggers.SetPrefix("[LocalTweaks]")
}

// Close stops watching the file, if watching was enabled.
func (p *Provider) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
	})
}

func (p *Provider) value(key string) (tweaks.Value, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	value, ok := p.values[key]
	return value, ok
}

func (p *Provider) setValues(values map[string]tweaks.Value) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.values = values
}

func (p *Provider) run(originalFileInfo os.FileInfo) {
	lastFileInfo := originalFileInfo
	retryCh := make(chan struct{})
	needRetry := false
	retriedCountSinceLastChange := 0
	var lastError error

	scheduleRetry := func() {
		needRetry = true
		time.AfterFunc(p.retryInterval, func() {
			// Use non-blocking write because we never need to queue more than one retry signal
			select {
			case retryCh <- struct{}{}:
			default:
			}
		})
	}

	maybeReload := func() {
		curFileInfo, err := os.Stat(p.filePath)
		if err != nil {
			if lastError == nil {
				p.loggers.Warn(logMsgReloadFileNotFound)
				lastError = err
			}
		} else if fileMayHaveChanged(curFileInfo, lastFileInfo) {
			// If the file's mod time or size has changed, we will always try to reload.
			retriedCountSinceLastChange = 0
			lastError = nil
			lastFileInfo = curFileInfo
			needRetry = false
			values, err := readTweaksFile(p.filePath, p.loggers)
			if err != nil {
				// A failure here might be a real failure, or it might be that the file is being
				// copied over non-atomically so that we're seeing an invalid partial state. So
				// we'll always retry at least once in this case.
				p.loggers.Warnf(logMsgReloadError, err.Error())
				lastError = err
				scheduleRetry()
				return
			}
			p.setValues(values)
			p.loggers.Infof(logMsgReloadedData, p.filePath)
			return
		} else if lastError == nil {
			// This was a spurious file watch notification - the file hasn't changed and we're
			// not retrying after an error, so there's nothing to do
			return
		}
		// Either the file was not found, or this is a delayed retry after an earlier error and
		// the file has not changed since the last failed attempt. A slow copy operation could
		// still be in progress, so schedule another retry - up to a limit.
		if retriedCountSinceLastChange < maxRetriesIfFileNotChanged {
			retriedCountSinceLastChange++
			p.loggers.Warn(logMsgReloadUnchangedRetry)
			scheduleRetry()
		} else {
			p.loggers.Errorf(logMsgReloadUnchangedNoMoreRetries, lastError)
		}
	}

	for {
		select {
		case <-p.closeCh:
			p.watcher.Close()
			return

		case <-p.watcher.Events:
			// Consume any redundant change events that may have already piled up in the queue
			p.consumeExtraEvents()
			maybeReload()

		case <-retryCh:
			// If needRetry is false, this is an obsolete signal - we've already reloaded
			if needRetry {
				maybeReload()
			}
		}
	}
}

func (p *Provider) consumeExtraEvents() {
	for {
		select {
		case <-p.watcher.Events: // COVERAGE: can't simulate this condition in unit tests
		default:
			return
		}
	}
}

func fileMayHaveChanged(oldInfo, newInfo os.FileInfo) bool {
	return oldInfo.ModTime() != newInfo.ModTime() || oldInfo.Size() != newInfo.Size()
}

func readTweaksFile(filePath string, loggers ldlog.Loggers) (map[string]tweaks.Value, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errCannotOpenTweaksFile(filePath, err)
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errBadTweaksFile(filePath, err)
	}

	values := make(map[string]tweaks.Value, len(raw))
	for key, entry := range raw {
		value, ok := tweaks.ValueFromArbitrary(entry)
		if !ok {
			loggers.Warnf(logMsgBadEntry, key)
			continue
		}
		values[key] = value
	}
	return values, nil
}
