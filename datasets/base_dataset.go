// Package datasets はEEGデータセットの基底構造を提供します。
package datasets

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// Transform はEEGサンプルに適用されるオンライン変換です。
type Transform func(x *mat.Dense) *mat.Dense

// LabelTransform はラベル値に適用される変換です。
type LabelTransform func(label string) string

// BaseDataset は全てのEEGデータセットの基底となる構造体です。
// メタデータインデックス（1サンプル1行のテーブル）と、ビュー間で参照共有される
// 設定（ルートパス、変換）を保持します。
type BaseDataset struct {
	// RootPath は前処理済みデータのルートディレクトリ
	RootPath string

	// OnlineTransform はサンプル読み込み時に適用される変換
	OnlineTransform Transform

	// LabelTransform はラベル読み込み時に適用される変換
	LabelTransform LabelTransform

	// Info はメタデータインデックス。各行が1サンプルに対応し、
	// 少なくともsubject_idとtrial_idの列を持ちます。
	Info dataframe.DataFrame
}

// NewBaseDataset は新しいBaseDatasetを作成します。
func NewBaseDataset(rootPath string, info dataframe.DataFrame) *BaseDataset {
	return &BaseDataset{
		RootPath: rootPath,
		Info:     info,
	}
}

// WithInfo はメタデータのみを置き換えた浅いコピーを返します。
// 変換やルートパスは元のデータセットと参照共有され、メタデータは
// コピー側が独立に所有します。元のデータセットは変更されません。
func (d *BaseDataset) WithInfo(info dataframe.DataFrame) *BaseDataset {
	view := *d
	view.Info = info
	return &view
}

// Len はメタデータインデックスの行数（サンプル数）を返します。
func (d *BaseDataset) Len() int {
	if d.Info.Err != nil {
		return 0
	}
	return d.Info.Nrow()
}

// Columns はメタデータの列名を返します。
func (d *BaseDataset) Columns() []string {
	return d.Info.Names()
}
