package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 使用 viper 从指定的 yaml 文件加载配置到 out 指向的结构体。
// - 支持以 TNOTE_ 为前缀的环境变量覆盖，层级用下划线分隔，
//   例如 TNOTE_MYSQLCONFIG_WRITE_DSN 覆盖 mysqlConfig.write.dsn。
// - out 必须是指向配置结构体的指针。
func LoadConfig(configFile string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TNOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件 %s 失败: %w", configFile, err)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("解析配置到结构体失败: %w", err)
	}
	return nil
}
