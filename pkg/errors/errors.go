// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// torcheegの例外システムにインスパイアされており、データセット分割に関する
// 構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("torcheeg-Warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// 例えば、test_sizeが(0, 1)の範囲外である場合など。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("torcheeg: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InvalidCriteriaError は分割基準として指定された列名がメタデータに存在しない
// 場合のエラーです。メッセージには選択可能な列名を列挙します。
type InvalidCriteriaError struct {
	Criteria string
	Columns  []string
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("torcheeg: unsupported criteria %s, please select one of the following options [%s]",
		e.Criteria, strings.Join(e.Columns, ", "))
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidCriteriaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("criteria", e.Criteria).
		Strs("columns", e.Columns).
		Str("type", "InvalidCriteriaError")
}

// NewInvalidCriteriaError は新しいInvalidCriteriaErrorを作成し、スタックトレースを付与します。
func NewInvalidCriteriaError(criteria string, columns []string) error {
	err := &InvalidCriteriaError{Criteria: criteria, Columns: columns}
	return errors.WithStack(err)
}

// DegeneratePartitionError は被験者のトライアル分割の結果、訓練グループまたは
// テストグループが空になった場合のエラーです。分割全体を中断します。
type DegeneratePartitionError struct {
	Subject   string
	NumTrials int
	NumTrain  int
	NumTest   int
}

func (e *DegeneratePartitionError) Error() string {
	return fmt.Sprintf("torcheeg: the number of training or testing trials for subject %s is zero (trials: %d, train: %d, test: %d)",
		e.Subject, e.NumTrials, e.NumTrain, e.NumTest)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegeneratePartitionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("subject", e.Subject).
		Int("num_trials", e.NumTrials).
		Int("num_train", e.NumTrain).
		Int("num_test", e.NumTest).
		Str("type", "DegeneratePartitionError")
}

// NewDegeneratePartitionError は新しいDegeneratePartitionErrorを作成し、スタックトレースを付与します。
func NewDegeneratePartitionError(subject string, numTrials, numTrain, numTest int) error {
	err := &DegeneratePartitionError{Subject: subject, NumTrials: numTrials, NumTrain: numTrain, NumTest: numTest}
	return errors.WithStack(err)
}

// MissingColumnError はメタデータに必須の列が存在しない場合のエラーです。
// 例えば、subject_idやtrial_idが欠けている場合など。
type MissingColumnError struct {
	Op      string
	Column  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("torcheeg: %s: required column '%s' not found in metadata (available: [%s])",
		e.Op, e.Column, strings.Join(e.Columns, ", "))
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Strs("columns", e.Columns).
		Str("type", "MissingColumnError")
}

// NewMissingColumnError は新しいMissingColumnErrorを作成し、スタックトレースを付与します。
func NewMissingColumnError(op, column string, columns []string) error {
	err := &MissingColumnError{Op: op, Column: column, Columns: columns}
	return errors.WithStack(err)
}

// SplitStoreError は分割情報の永続化・読み込みに失敗した場合のエラーです。
type SplitStoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *SplitStoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("torcheeg: %s: split path %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("torcheeg: %s: split path %s", e.Op, e.Path)
}

func (e *SplitStoreError) Unwrap() error {
	return e.Err
}

// NewSplitStoreError は新しいSplitStoreErrorを作成し、スタックトレースを付与します。
func NewSplitStoreError(op, path string, err error) error {
	storeErr := &SplitStoreError{Op: op, Path: path, Err: err}
	return errors.WithStack(storeErr)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
