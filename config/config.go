package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	// BoltFile is the embedded store path, relative to workdir unless absolute.
	BoltFile string `yaml:"bolt_file" json:"bolt_file"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// StorefrontConfig configures the client-side storefront CLI.
type StorefrontConfig struct {
	ApiUrl   string `yaml:"api_url" json:"api_url"`
	CartFile string `yaml:"cart_file" json:"cart_file"`
}

type AppConfig struct {
	System     SysConfig        `yaml:"system" json:"system"`
	Web        WebConfig        `yaml:"web" json:"web"`
	Database   DBConfig         `yaml:"database" json:"database"`
	Logger     LoggerConfig     `yaml:"logger" json:"logger"`
	Storefront StorefrontConfig `yaml:"storefront" json:"storefront"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "ministore",
		Location: "Asia/Kolkata",
		Workdir:  "/var/ministore",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 5000,
	},
	Database: DBConfig{
		Type:     "bolt",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "ministore",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
		BoltFile: "catalog.db",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "ministore.log",
	},
	Storefront: StorefrontConfig{
		ApiUrl:   "http://127.0.0.1:5000",
		CartFile: "cart.db",
	},
}

// LoadConfig loads the YAML configuration file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	appcfg := DefaultAppConfig
	if cfile != "" && fileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		appcfg = new(AppConfig)
		if err := yaml.Unmarshal(data, appcfg); err != nil {
			panic(err)
		}
	}

	setEnvValue("MINISTORE_SYSTEM_DEBUG", func(v string) { appcfg.System.Debug = cast.ToBool(v) })
	setEnvValue("MINISTORE_SYSTEM_WORKDIR", func(v string) { appcfg.System.Workdir = v })
	setEnvValue("MINISTORE_WEB_HOST", func(v string) { appcfg.Web.Host = v })
	setEnvValue("MINISTORE_WEB_PORT", func(v string) { appcfg.Web.Port = cast.ToInt(v) })
	setEnvValue("MINISTORE_DB_TYPE", func(v string) { appcfg.Database.Type = v })
	setEnvValue("MINISTORE_DB_HOST", func(v string) { appcfg.Database.Host = v })
	setEnvValue("MINISTORE_DB_PORT", func(v string) { appcfg.Database.Port = cast.ToInt(v) })
	setEnvValue("MINISTORE_DB_NAME", func(v string) { appcfg.Database.Name = v })
	setEnvValue("MINISTORE_DB_USER", func(v string) { appcfg.Database.User = v })
	setEnvValue("MINISTORE_DB_PWD", func(v string) { appcfg.Database.Passwd = v })
	setEnvValue("MINISTORE_API_URL", func(v string) { appcfg.Storefront.ApiUrl = v })

	appcfg.initDirs()
	return appcfg
}

func setEnvValue(name string, f func(v string)) {
	if value := os.Getenv(name); value != "" {
		f(value)
	}
}

func fileExists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}
