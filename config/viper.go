package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ceyewan/snowkit/clog"
	"github.com/ceyewan/snowkit/xerrors"
)

// loader 实现 Loader 接口
type loader struct {
	v         *viper.Viper
	opts      *Options
	logger    clog.Logger
	mu        sync.RWMutex
	watches   map[string][]chan Event
	oldValues map[string]any
}

// New 创建配置加载器，需调用 Load 后方可使用。
func New(opts ...Option) (Loader, error) {
	options := defaultOptions()
	for _, o := range opts {
		o(options)
	}
	options.normalize()

	return &loader{
		v:         viper.New(),
		opts:      options,
		logger:    options.Logger.With(clog.String("component", "config")),
		watches:   make(map[string][]chan Event),
		oldValues: make(map[string]any),
	}, nil
}

// MustLoad 创建并加载配置，出错时 panic。仅用于初始化阶段。
func MustLoad(opts ...Option) Loader {
	l, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create config loader: %v", err))
	}
	if err := l.Load(context.Background()); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return l
}

// Load 初始化并从所有来源加载配置
func (l *loader) Load(ctx context.Context) error {
	l.v.SetConfigName(l.opts.Name)
	l.v.SetConfigType(l.opts.FileType)
	for _, path := range l.opts.Paths {
		l.v.AddConfigPath(path)
	}

	// 环境变量优先级最高，先挂接保证全部可见
	l.v.SetEnvPrefix(l.opts.EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.loadDotEnv(); err != nil {
		l.logger.Warn("failed to load .env file", clog.Error(err))
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return xerrors.Wrapf(err, "failed to read config file %s", l.opts.Name)
		}
		l.logger.Warn("no configuration file found", clog.String("name", l.opts.Name))
	}

	if err := l.loadEnvironmentConfig(); err != nil {
		return err
	}

	if err := l.Validate(); err != nil {
		return err
	}

	l.captureCurrentValues()

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if err := l.loadEnvironmentConfig(); err != nil {
			l.logger.Error("failed to reload environment config", clog.Error(err))
		}
		if err := l.loadDotEnv(); err != nil {
			l.logger.Warn("failed to reload .env file", clog.Error(err))
		}
		l.notifyWatches()
	})
	l.v.WatchConfig()

	return nil
}

// loadDotEnv 尝试从搜索路径加载 .env 文件
func (l *loader) loadDotEnv() error {
	var loaded bool
	var lastErr error

	if err := godotenv.Load(); err == nil {
		loaded = true
	} else {
		lastErr = err
	}

	for _, path := range l.opts.Paths {
		if err := godotenv.Load(filepath.Join(path, ".env")); err == nil {
			loaded = true
		} else {
			lastErr = err
		}
	}

	if !loaded && lastErr != nil {
		return lastErr
	}
	return nil
}

// loadEnvironmentConfig 按 <PREFIX>_ENV 环境变量加载环境特定配置文件
func (l *loader) loadEnvironmentConfig() error {
	env := os.Getenv(l.opts.EnvPrefix + "_ENV")
	if env == "" {
		return nil
	}

	originalName := l.opts.Name
	envConfigName := fmt.Sprintf("%s.%s", l.opts.Name, env)
	l.v.SetConfigName(envConfigName)
	defer l.v.SetConfigName(originalName)

	if err := l.v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return xerrors.Wrapf(err, "failed to merge environment config %s", envConfigName)
		}
		l.logger.Info("no environment configuration file", clog.String("env", env))
		return nil
	}

	l.logger.Info("loaded environment configuration", clog.String("env", env))
	return nil
}

// captureCurrentValues 保存当前配置值作为变更检测基线
func (l *loader) captureCurrentValues() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key := range l.watches {
		l.oldValues[key] = l.v.Get(key)
	}
}

func (l *loader) Get(key string) any {
	return l.v.Get(key)
}

func (l *loader) Unmarshal(v any) error {
	return l.v.Unmarshal(v)
}

func (l *loader) UnmarshalKey(key string, v any) error {
	return l.v.UnmarshalKey(key, v)
}

// Watch 订阅特定配置 key 的变更
func (l *loader) Watch(ctx context.Context, key string) (<-chan Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan Event, 10)
	l.watches[key] = append(l.watches[key], ch)
	l.oldValues[key] = l.v.Get(key)

	go func() {
		<-ctx.Done()
		l.removeWatch(key, ch)
	}()

	return ch, nil
}

// removeWatch 从注册表中移除并关闭监听通道
func (l *loader) removeWatch(key string, ch chan Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	chans, ok := l.watches[key]
	if !ok {
		return
	}
	for i, c := range chans {
		if c == ch {
			l.watches[key] = append(chans[:i], chans[i+1:]...)
			close(ch)
			break
		}
	}
	if len(l.watches[key]) == 0 {
		delete(l.watches, key)
		delete(l.oldValues, key)
	}
}

// Validate 验证配置非空
func (l *loader) Validate() error {
	if len(l.v.AllSettings()) == 0 {
		return xerrors.Wrapf(ErrValidationFailed, "configuration is empty")
	}
	return nil
}

// notifyWatches 比对基线值并通知所有监听者
func (l *loader) notifyWatches() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, channels := range l.watches {
		newValue := l.v.Get(key)
		oldValue := l.oldValues[key]
		if reflect.DeepEqual(oldValue, newValue) {
			continue
		}

		event := Event{
			Key:       key,
			Value:     newValue,
			OldValue:  oldValue,
			Source:    "file",
			Timestamp: time.Now(),
		}
		l.oldValues[key] = newValue

		for _, ch := range channels {
			select {
			case ch <- event:
			default:
				l.logger.Warn("watch channel full, event dropped", clog.String("key", key))
			}
		}
	}
}
