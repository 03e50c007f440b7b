package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Process adapter
		"Starting process %s":            "プロセス %s を起動中",
		"Process %s exited with code %d": "プロセス %s が終了コード %d で終了しました",
		"Resolved executable %s":         "実行ファイルを解決しました: %s",
		"Process %s finished in %s":      "プロセス %s が %s で完了しました",
		"Process %s cancelled":           "プロセス %s がキャンセルされました",

		// Filesystem adapter
		"Skipping %s in %s: name contains a backslash": "%s (%s 内) をスキップします: 名前にバックスラッシュが含まれています",

		// Library adapter
		"Loading library %s": "ライブラリ %s を読み込み中",

		// Search
		"Searching for %s from %s":          "%s を %s から検索中",
		"Checking %s":                       "%s を確認中",
		"Found %s":                          "%s が見つかりました",
		"Search depth %d reached at %s":     "検索深度 %d に %s で到達しました",
		"Listing %s files in %s":            "%s のファイルを %s で一覧表示中",
		"Skipping unreadable directory %s": "読み取れないディレクトリ %s をスキップします",

		// Errors
		"Failed to read directory %s: %s": "ディレクトリ %s の読み取りに失敗しました: %s",
		"Failed to start process %s: %s":  "プロセス %s の起動に失敗しました: %s",
	})
}
