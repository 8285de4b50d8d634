package upload

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
)

// 원본 앱과 같은 축소 기준: 긴 변 800px, JPEG 품질 70.
const (
	maxDimension = 800
	jpegQuality  = 70
)

// Process - 업로드된 이미지를 디코드해서 긴 변이 800px을 넘지 않게
// 비율을 유지한 채 줄이고, JPEG으로 다시 인코딩한다.
func Process(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
