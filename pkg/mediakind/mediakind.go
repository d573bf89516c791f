// Package mediakind classifies attachment file names as image, audio or
// video by extension, for choosing display icons and previews.
package mediakind

import (
	"path/filepath"
	"strings"
)

// Kind is the media category of a file.
type Kind int

// Media kinds. Other covers anything without a recognised extension.
const (
	Other Kind = iota
	Image
	Audio
	Video
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Audio:
		return "audio"
	case Video:
		return "video"
	default:
		return "other"
	}
}

// Extension tables, lower case, without the leading dot.
var (
	imageExts = extSet(`ami apx bmp bpg brk bw cal cals cbm cbr cbz cpt cur dds dng exr fif fpx fxo fxs gbr gif
giff ico iff ilbm lbm img jbig2 jb2 jp2 jpc j2c j2k jpx jpg jpeg jpe jfif jng jxr wdp hdp kdc koa lwf lwi mac
miff msk msp ncr ngg nlm nmp nol oaz oil pat pbm pcd pct pcx pdb pdd pgf pgm pic pld png pnm ppm psd pspimage psp
qti qtif ras raw rgb rgba sgi rle tga bpx icb pix tif tiff webp xbm xcf xpm ai cdr cgm cmx des design dgn dvg dwg
dwf dxf emf eps fhx fig ger gem geo mba odg tikz plt hpg hp2 pl2 prn ps rvt svg swf sxd tvz wmf xaml xar`)

	audioExts = extSet(`act aif aiff aac amr ape au awb dct dss dvf flac gsm iklax ivs m4a m4p mmf mp3 mpc msv
ogg oga opus ra rm raw sln tta vox wav wma wv`)

	videoExts = extSet(`webm mkv flv vob ogv drc mng avi mov qt wmv yuv rm rmvb asf mp4 m4p m4v mpg mp2 mpe mpv
mpeg m2v svi 3gp 3g2 mxf roq nsv`)
)

func extSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ext := range strings.Fields(list) {
		set[ext] = true
	}
	return set
}

// Classify returns the kind of the named file. Tables are consulted in the
// order image, audio, video, so an extension listed in more than one (raw,
// rm, m4p) resolves to the first.
func Classify(name string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch {
	case ext == "":
		return Other
	case imageExts[ext]:
		return Image
	case audioExts[ext]:
		return Audio
	case videoExts[ext]:
		return Video
	default:
		return Other
	}
}

// IsImage reports whether name is an image file.
func IsImage(name string) bool { return Classify(name) == Image }

// IsAudio reports whether name is an audio file.
func IsAudio(name string) bool { return Classify(name) == Audio }

// IsVideo reports whether name is a video file.
func IsVideo(name string) bool { return Classify(name) == Video }
