// circles 是一个躲避圆形敌人的小游戏：敌人从屏幕外四个方向飞过，
// 活得越久分数越高，碰到敌人即结束，按 R 重新开始。
//
// Usage:
//
//	circles                 - 开始游戏
//	circles config          - 输出当前生效的配置
//
// Flags:
//
//	--config <path>     - 配置文件路径
//	--seed <value>      - 随机种子（0 表示使用当前时间）
//	--enemies <n>       - 敌人数量
//	--tps <rate>        - 每秒更新次数
//	--log-level <level> - debug, info, warn, error
//	--debug             - 显示 TPS/FPS
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"avoid-the-circles/content/config"
	"avoid-the-circles/content/world"
)

var (
	flagConfig   string
	flagSeed     int64
	flagEnemies  int
	flagTPS      int
	flagLogLevel string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:           "circles",
	Short:         "Avoid the circles sweeping across the screen",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagEnemies, "enemies", 0, "Number of enemies (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Updates per second (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show TPS/FPS overlay")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "circles",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig 读取配置文件，再用命令行参数覆盖
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("enemies") {
		cfg.Enemies.Count = flagEnemies
	}
	if flags.Changed("tps") {
		cfg.TPS = flagTPS
	}
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f, err := loadFaces()
	if err != nil {
		return err
	}
	hit, err := InitSound()
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}

	logger.Info("starting", "seed", seed, "enemies", cfg.Enemies.Count, "tps", cfg.TPS,
		"size", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))

	g := NewGame(cfg, world.New(cfg, rng, logger), logger, hit, f)

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("window closed")
	return nil
}
