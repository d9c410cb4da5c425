package mandel

// Stats summarises a rendered buffer.
type Stats struct {
	Pixels    int
	Histogram [256]int
	Mean      float64
	Black     int // pixels at 0
	White     int // pixels at 255
}

func Summarize(buf []byte) Stats {
	var s Stats
	s.Pixels = len(buf)
	var sum int
	for _, v := range buf {
		s.Histogram[v]++
		sum += int(v)
	}
	s.Black = s.Histogram[0]
	s.White = s.Histogram[255]
	if s.Pixels > 0 {
		s.Mean = float64(sum) / float64(s.Pixels)
	}
	return s
}
