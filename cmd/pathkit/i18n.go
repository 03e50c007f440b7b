// Package main provides localization for the pathkit CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",
		"Paths":         "パス",

		// Root command
		"Inspect and manipulate normalized paths": "正規化されたパスを調べて操作します",

		// Global flags
		"YAML configuration file":                "YAML設定ファイル",
		"Log level (debug, info, warn, error)":   "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                "すべてのログ出力を抑制",
		"Treat arguments as native paths":        "引数をネイティブ形式のパスとして扱う",
		"Print paths with the native separator": "ネイティブの区切り文字でパスを出力",

		// Path commands
		"Print the canonical form of each path":        "各パスの正規形を表示",
		"Join paths from left to right":                "パスを左から順に結合",
		"Express a path relative to a base directory":  "基準ディレクトリからの相対パスを表示",
		"Print the parent of a path":                   "パスの親を表示",
		"Number of levels to go up":                    "上にたどる階層数",
		"Describe the components of a path":            "パスの構成要素を表示",
		"Output format (text, yaml)":                   "出力形式（text, yaml）",
		"Write the description to a file":              "説明をファイルに書き込む",
		"path":                                         "パス",
		"root":                                         "ルート",
		"directories":                                  "ディレクトリ",
		"file name":                                    "ファイル名",
		"file stem":                                    "ファイル名（拡張子なし）",
		"file extension":                               "拡張子",
		"parent":                                       "親",

		// Search commands
		"Search upward for a marker file":                         "マーカーファイルを上位ディレクトリへ検索",
		"Directory to start from (default: current directory)":    "検索開始ディレクトリ（デフォルト: カレントディレクトリ）",
		"Marker file name (default: marker_file from config)":     "マーカーファイル名（デフォルト: 設定の marker_file）",
		"List files in a directory":                               "ディレクトリ内のファイルを一覧表示",
		"Only list files with this extension":                     "この拡張子のファイルのみ表示",
		"Print paths relative to the directory":                   "ディレクトリからの相対パスで表示",

		// Run command
		"Run an executable and report its exit code":           "実行ファイルを実行し終了コードを報告",
		"Working directory (default: current directory)":       "作業ディレクトリ（デフォルト: カレントディレクトリ）",
		"Capture output and print it after the process exits": "出力を取得し、プロセス終了後に表示",

		// Library command
		"Check that a dynamic library exports a symbol": "動的ライブラリがシンボルをエクスポートしているか確認",

		// Semver commands
		"Work with semantic versions":                  "セマンティックバージョンを扱う",
		"Print -1, 0 or 1 comparing two versions":      "2つのバージョンを比較し -1, 0, 1 を表示",
		"Fail if a version is older than min_version": "バージョンが min_version より古い場合は失敗",

		// Errors
		"%s requires at least %d argument(s)":        "%s には少なくとも %d 個の引数が必要です",
		"Unknown output format %s":                   "不明な出力形式です: %s",
		"Failed to load config %s":                   "設定 %s の読み込みに失敗しました",
		"Version %s is older than the minimum %s":    "バージョン %s は最小バージョン %s より古いです",
	})
}
