package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/denotw/website/internal/manual"
	"github.com/denotw/website/internal/model"
	"github.com/denotw/website/internal/publish"
	"github.com/denotw/website/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyConfig               = "config"
	KeyLog                  = "log"
	KeyLogLevel             = "logLevel"
	KeyVersionsFile         = "versionsFile"
	KeyHostX                = "hosts.x"
	KeyHostRaw              = "hosts.raw"
	KeyHostDoc              = "hosts.doc"
	KeyHttpCache            = "httpCache"
	KeyFetchTimeout         = "fetchTimeout"
	KeyCorsAllowedOrigins   = "corsAllowedOrigins"
	KeyCorsAllowedHeaders   = "corsAllowedHeaders"
	KeyCorsAllowCredentials = "corsAllowCredentials"
	KeyCorsMaxAge           = "corsMaxAge"
	KeyPublishBucket        = "publish.bucket"
	KeyPublishRegion        = "publish.region"
	KeyPublishEndpoint      = "publish.endpoint"
	KeyPublishPrefix        = "publish.prefix"
	KeyPublishAccessKeyId   = "publish.accessKeyId"
	KeyPublishSecretKey     = "publish.secretAccessKey"
	EnvPrefix               = "denosite"

	LogLevelOff         = "off"
	DefaultFetchTimeout = 30 * time.Second
	dotEnvFile          = ".env"
	httpCacheDir        = ".http-cache"
)

var HomeDir string
var ConfigDir string

func InitConfig() {
	var err error
	HomeDir, err = os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	ConfigDir = filepath.Join(HomeDir, ".denosite")

	if err := loadDotEnv(dotEnvFile); err != nil {
		panic("cannot read " + dotEnvFile + ": " + err.Error())
	}
}

// loadDotEnv exports the variables defined in the given file to the process environment, without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(name string) error {
	err := godotenv.Load(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func InitViper() {
	viper.SetDefault(KeyLog, false)
	viper.SetDefault(KeyLogLevel, "")
	viper.SetDefault(KeyHostX, manual.DefaultHostX)
	viper.SetDefault(KeyHostRaw, manual.DefaultHostRaw)
	viper.SetDefault(KeyHostDoc, manual.DefaultHostDoc)
	viper.SetDefault(KeyHttpCache, false)
	viper.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)

	viper.SetConfigType("json")
	viper.SetConfigName("config")
	if ConfigDir != "" {
		viper.AddConfigPath(ConfigDir)
	}
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; do nothing and rely on defaults
		} else {
			panic("cannot read config: " + err.Error())
		}
	}
	// set prefix "denosite" for environment variables
	// the environment variables then have to match pattern "denosite_<viper variable>", lower or uppercase,
	// with dots replaced by underscores
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// bind viper variables to environment variables
	_ = viper.BindEnv(KeyConfig)               // env variable name = DENOSITE_CONFIG
	_ = viper.BindEnv(KeyLog)                  // env variable name = DENOSITE_LOG
	_ = viper.BindEnv(KeyLogLevel)             // env variable name = DENOSITE_LOGLEVEL
	_ = viper.BindEnv(KeyVersionsFile)         // env variable name = DENOSITE_VERSIONSFILE
	_ = viper.BindEnv(KeyHostX)                // env variable name = DENOSITE_HOSTS_X
	_ = viper.BindEnv(KeyHostRaw)              // env variable name = DENOSITE_HOSTS_RAW
	_ = viper.BindEnv(KeyHostDoc)              // env variable name = DENOSITE_HOSTS_DOC
	_ = viper.BindEnv(KeyHttpCache)            // env variable name = DENOSITE_HTTPCACHE
	_ = viper.BindEnv(KeyFetchTimeout)         // env variable name = DENOSITE_FETCHTIMEOUT
	_ = viper.BindEnv(KeyCorsAllowedOrigins)   // env variable name = DENOSITE_CORSALLOWEDORIGINS
	_ = viper.BindEnv(KeyCorsAllowedHeaders)   // env variable name = DENOSITE_CORSALLOWEDHEADERS
	_ = viper.BindEnv(KeyCorsAllowCredentials) // env variable name = DENOSITE_CORSALLOWCREDENTIALS
	_ = viper.BindEnv(KeyCorsMaxAge)           // env variable name = DENOSITE_CORSMAXAGE
	_ = viper.BindEnv(KeyPublishBucket)        // env variable name = DENOSITE_PUBLISH_BUCKET
	_ = viper.BindEnv(KeyPublishRegion)        // env variable name = DENOSITE_PUBLISH_REGION
	_ = viper.BindEnv(KeyPublishEndpoint)      // env variable name = DENOSITE_PUBLISH_ENDPOINT
	_ = viper.BindEnv(KeyPublishPrefix)        // env variable name = DENOSITE_PUBLISH_PREFIX
	_ = viper.BindEnv(KeyPublishAccessKeyId)   // env variable name = DENOSITE_PUBLISH_ACCESSKEYID
	_ = viper.BindEnv(KeyPublishSecretKey)     // env variable name = DENOSITE_PUBLISH_SECRETACCESSKEY
}

// Hosts returns the configured content hosts
func Hosts() manual.Hosts {
	return manual.Hosts{
		X:   viper.GetString(KeyHostX),
		Raw: viper.GetString(KeyHostRaw),
		Doc: viper.GetString(KeyHostDoc),
	}
}

// LoadManifest reads the configured versions file, or the embedded default manifest if none is configured
func LoadManifest() (model.Manifest, error) {
	name := viper.GetString(KeyVersionsFile)
	if name == "" {
		return model.ParseManifest(model.DefaultManifest)
	}
	name, err := utils.ExpandHome(name)
	if err != nil {
		return model.Manifest{}, err
	}
	_, raw, err := utils.ReadRequiredFile(name)
	if err != nil {
		return model.Manifest{}, err
	}
	return model.ParseManifest(raw)
}

// HttpCacheDir returns the directory for caching fetched manual content, or an empty string if caching is disabled
func HttpCacheDir() string {
	if !viper.GetBool(KeyHttpCache) || ConfigDir == "" {
		return ""
	}
	return filepath.Join(ConfigDir, httpCacheDir)
}

// PublishConfig returns the configured publish target
func PublishConfig() publish.S3Config {
	return publish.S3Config{
		Bucket:          viper.GetString(KeyPublishBucket),
		Region:          viper.GetString(KeyPublishRegion),
		Endpoint:        viper.GetString(KeyPublishEndpoint),
		Prefix:          viper.GetString(KeyPublishPrefix),
		AccessKeyID:     viper.GetString(KeyPublishAccessKeyId),
		SecretAccessKey: viper.GetString(KeyPublishSecretKey),
	}
}

func FetchTimeout() time.Duration {
	return viper.GetDuration(KeyFetchTimeout)
}
