package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

type audioFormat int

const (
	formatUnknown audioFormat = iota
	formatMP3
	formatFLAC
	formatWAV
)

func (f audioFormat) String() string {
	switch f {
	case formatMP3:
		return "MP3"
	case formatFLAC:
		return "FLAC"
	case formatWAV:
		return "WAV"
	default:
		return "unknown"
	}
}

func formatFromExt(p string) audioFormat {
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		return formatMP3
	case ".flac":
		return formatFLAC
	case ".wav", ".wave":
		return formatWAV
	default:
		return formatUnknown
	}
}

func formatFromContentType(ct string) audioFormat {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return formatUnknown
	}
	switch mediaType {
	case "audio/mpeg", "audio/mp3", "audio/mpeg3":
		return formatMP3
	case "audio/flac", "audio/x-flac":
		return formatFLAC
	case "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave":
		return formatWAV
	default:
		return formatUnknown
	}
}

// sniffFormat inspects magic bytes. An ID3v2 tag is skipped first,
// since taggers prepend it to FLAC files too.
func sniffFormat(r io.ReaderAt) audioFormat {
	header := make([]byte, 12)
	n, _ := r.ReadAt(header, 0)
	header = header[:n]

	if offset, ok := id3v2Size(header); ok {
		magic := make([]byte, 4)
		if n, _ := r.ReadAt(magic, offset); n == 4 && string(magic) == "fLaC" {
			return formatFLAC
		}
		return formatMP3
	}

	switch {
	case len(header) >= 4 && string(header[:4]) == "fLaC":
		return formatFLAC
	case len(header) >= 12 && string(header[:4]) == "RIFF" && string(header[8:12]) == "WAVE":
		return formatWAV
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return formatMP3
	default:
		return formatUnknown
	}
}

// id3v2Size returns the full size of an ID3v2 tag (header included) when
// header starts with one.
func id3v2Size(header []byte) (int64, bool) {
	if len(header) < 10 || string(header[:3]) != "ID3" {
		return 0, false
	}
	// Syncsafe integer: each byte only uses 7 bits
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	return 10 + size, true
}

// skipID3v2 positions r after an ID3v2 tag, or at the start when there is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n == 0 {
		return err
	}
	offset, ok := id3v2Size(header[:n])
	if !ok {
		offset = 0
	}
	_, err = r.Seek(offset, io.SeekStart)
	return err
}

// memFile is an in-memory io.ReadSeekCloser over a downloaded source.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// openSource resolves src to seekable audio data and its format.
func (p *Player) openSource(ctx context.Context, src string) (io.ReadSeekCloser, audioFormat, error) {
	u, err := url.Parse(src)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return p.fetch(ctx, u)
		case "file":
			return openFile(u.Path)
		}
	}
	return openFile(src)
}

func openFile(name string) (io.ReadSeekCloser, audioFormat, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, formatUnknown, err
	}
	format := formatFromExt(name)
	if format == formatUnknown {
		format = sniffFormat(f)
	}
	return f, format, nil
}

func (p *Player) fetch(ctx context.Context, u *url.URL) (io.ReadSeekCloser, audioFormat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, formatUnknown, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "prodify/0.1")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, formatUnknown, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, formatUnknown, fmt.Errorf("fetch %s: status %d", u.Redacted(), resp.StatusCode)
	}
	if resp.ContentLength > p.maxBytes {
		return nil, formatUnknown, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBytes+1))
	if err != nil {
		return nil, formatUnknown, err
	}
	if int64(len(data)) > p.maxBytes {
		return nil, formatUnknown, ErrTooLarge
	}

	f := memFile{bytes.NewReader(data)}
	format := formatFromExt(u.Path)
	if format == formatUnknown {
		format = formatFromContentType(resp.Header.Get("Content-Type"))
	}
	if format == formatUnknown {
		format = sniffFormat(f)
	}
	return f, format, nil
}

// decode builds a seekable stream over rsc. rsc is closed on failure.
func decode(format audioFormat, rsc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		f        beep.Format
		err      error
	)
	switch format {
	case formatMP3:
		streamer, f, err = decodeMP3(rsc)
	case formatFLAC:
		if err = skipID3v2(rsc); err == nil {
			streamer, f, err = flac.Decode(rsc)
		}
	case formatWAV:
		streamer, f, err = wav.Decode(rsc)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		rsc.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return streamer, f, nil
}
