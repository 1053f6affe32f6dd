package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Storage struct {
		// Каталог для локальных JSON-файлов с ценами/коэффициентами
		DataDir string `mapstructure:"data_dir"`
		// Таймаут на любой запрос к удалённому хранилищу
		RemoteTimeout time.Duration `mapstructure:"remote_timeout"`
	} `mapstructure:"storage"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	// Переопределение через ENV (APP_*), если надо
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":3040")
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.remote_timeout", 10*time.Second)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		// файла может не быть вовсе — тогда работаем на дефолтах
		// и переменных окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
