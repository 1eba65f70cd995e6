package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
)

const (
	// MaxEdge は送信前の画像の長辺の上限ピクセル数です。
	MaxEdge = 1024
	// Quality は再圧縮時のJPEG品質です。
	Quality = 80
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FitWithin は長辺が maxEdge を超える場合のみ、縦横比を保ったまま縮小します。
// 上限以下の画像はそのまま返します（拡大は行いません）。
func FitWithin(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	longer := w
	if h > w {
		longer = h
	}
	if longer <= maxEdge || longer == 0 {
		return img
	}

	// 整数演算で丸め、長辺がちょうど maxEdge になるようにする
	nw, nh := maxEdge, h*maxEdge/w
	if h > w {
		nw, nh = w*maxEdge/h, maxEdge
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Preprocess は送信前の前処理として、長辺キャップとJPEG再圧縮を行い、
// 結果を data URI として返します。
// デコードに失敗した場合はエラーとせず、元データを検出したMIMEタイプのまま
// 包んで返します。前処理はあくまでペイロード削減のためのベストエフォートです。
func Preprocess(data []byte) string {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return EncodeDataURI(http.DetectContentType(data), data)
	}

	fitted := FitWithin(img, MaxEdge)
	if fitted == img {
		// 縮小不要な画像は再圧縮のみ
		out, err := CompressToJPEG(data, Quality)
		if err != nil {
			return EncodeDataURI(http.DetectContentType(data), data)
		}
		return EncodeDataURI("image/jpeg", out)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, fitted, &jpeg.Options{Quality: Quality}); err != nil {
		return EncodeDataURI(http.DetectContentType(data), data)
	}
	return EncodeDataURI("image/jpeg", buf.Bytes())
}
