package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// buildAU 在内存中构造一个 AU 文件：24 字节大端文件头 + 原始负载
func buildAU(encoding, sampleRate, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	header := auHeader{
		Magic:      auMagic,
		DataOffset: 24,
		DataSize:   uint32(len(payload)),
		Encoding:   encoding,
		SampleRate: sampleRate,
		Channels:   channels,
	}
	binary.Write(&buf, binary.BigEndian, header)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeAUULawStereo(t *testing.T) {
	// μ-law 0x00 -> -32124, 0xFF -> 0, 0x80 -> 32124
	payload := []byte{0x00, 0xFF, 0x80, 0xFF}
	data := buildAU(auEncodingULaw, 48000, 2, payload)

	decoder, err := DecodeAU(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	if decoder.SampleRate() != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", decoder.SampleRate())
	}
	if decoder.Channels() != 2 {
		t.Errorf("Expected 2 channels, got %d", decoder.Channels())
	}
	// 双声道不升混：4 个 μ-law 字节 -> 8 字节 PCM
	if decoder.Length() != 8 {
		t.Fatalf("Expected length 8, got %d", decoder.Length())
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	expected := []int16{-32124, 0, 32124, 0}
	for i, want := range expected {
		got := int16(uint16(pcm[i*2]) | uint16(pcm[i*2+1])<<8)
		if got != want {
			t.Errorf("Sample %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestDecodeAUMonoUpmix(t *testing.T) {
	payload := []byte{0x00, 0x80}
	data := buildAU(auEncodingULaw, 48000, 1, payload)

	decoder, err := DecodeAU(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	if decoder.Channels() != 1 {
		t.Errorf("Expected source channel count 1, got %d", decoder.Channels())
	}
	// 单声道升混：2 个样本 -> 左右声道各一份 -> 8 字节
	if decoder.Length() != 8 {
		t.Fatalf("Expected length 8 after upmix, got %d", decoder.Length())
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	// 每个样本在左右声道重复出现
	expected := []int16{-32124, -32124, 32124, 32124}
	for i, want := range expected {
		got := int16(uint16(pcm[i*2]) | uint16(pcm[i*2+1])<<8)
		if got != want {
			t.Errorf("Sample %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestDecodeAUPCM16(t *testing.T) {
	// 大端 PCM16 样本：0x1234, 0x8000
	payload := []byte{0x12, 0x34, 0x80, 0x00}
	data := buildAU(auEncodingPCM16, 44100, 2, payload)

	decoder, err := DecodeAU(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}
	if decoder.SampleRate() != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", decoder.SampleRate())
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	// 转为小端后字节序交换
	expectedBytes := []byte{0x34, 0x12, 0x00, 0x80}
	if !bytes.Equal(pcm, expectedBytes) {
		t.Errorf("Expected PCM bytes %v, got %v", expectedBytes, pcm)
	}
}

func TestDecodeAUPCM16OddLength(t *testing.T) {
	payload := []byte{0x12, 0x34, 0x80}
	data := buildAU(auEncodingPCM16, 48000, 2, payload)

	if _, err := DecodeAU(bytes.NewReader(data)); err == nil {
		t.Error("Expected error for odd PCM16 payload length")
	}
}

func TestDecodeAUErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"文件过短", []byte{0x2e, 0x73, 0x6e}},
		{"错误的魔数", func() []byte {
			d := buildAU(auEncodingULaw, 48000, 1, []byte{0x00})
			d[0] = 0xFF
			return d
		}()},
		{"不支持的编码", buildAU(27, 48000, 1, []byte{0x00})},
		{"声道数为零", buildAU(auEncodingULaw, 48000, 0, []byte{0x00})},
		{"声道数过多", buildAU(auEncodingULaw, 48000, 6, []byte{0x00})},
		{"数据偏移越界", func() []byte {
			d := buildAU(auEncodingULaw, 48000, 1, []byte{0x00})
			binary.BigEndian.PutUint32(d[4:8], uint32(len(d)+100))
			return d
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(tt.data)); err == nil {
				t.Error("Expected decode error")
			}
		})
	}
}

func TestAUDecoderSeek(t *testing.T) {
	payload := []byte{0x00, 0xFF, 0x80, 0xFF}
	data := buildAU(auEncodingULaw, 48000, 2, payload)

	decoder, err := DecodeAU(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	// SeekStart
	pos, err := decoder.Seek(4, io.SeekStart)
	if err != nil || pos != 4 {
		t.Errorf("SeekStart: pos=%d err=%v, want pos=4", pos, err)
	}

	// SeekCurrent
	pos, err = decoder.Seek(2, io.SeekCurrent)
	if err != nil || pos != 6 {
		t.Errorf("SeekCurrent: pos=%d err=%v, want pos=6", pos, err)
	}

	// SeekEnd
	pos, err = decoder.Seek(-2, io.SeekEnd)
	if err != nil || pos != decoder.Length()-2 {
		t.Errorf("SeekEnd: pos=%d err=%v, want pos=%d", pos, err, decoder.Length()-2)
	}

	// 负偏移报错
	if _, err := decoder.Seek(-100, io.SeekStart); err == nil {
		t.Error("Expected error for negative seek position")
	}

	// 回到起点重读全部数据
	if _, err := decoder.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek to start failed: %v", err)
	}
	pcm, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll after seek failed: %v", err)
	}
	if int64(len(pcm)) != decoder.Length() {
		t.Errorf("Expected to read %d bytes, got %d", decoder.Length(), len(pcm))
	}

	// 读到末尾后返回 EOF
	if _, err := decoder.Read(make([]byte, 4)); err != io.EOF {
		t.Errorf("Expected io.EOF at end of stream, got %v", err)
	}
}
