package align

// Gotoh states. M ends in an aligned pair, X in a gap in b (a consumed),
// Y in a gap in a (b consumed).
const (
	sStop byte = iota
	sM
	sX
	sY
)

// Each trace byte packs the predecessor state of M (bits 0-1), X (bits
// 2-3) and Y (bits 4-5).
func pack(m, x, y byte) byte { return m | x<<2 | y<<4 }

// max3 picks the largest of three candidates, preferring earlier ones on ties.
func max3(v1 int, s1 byte, v2 int, s2 byte, v3 int, s3 byte) (int, byte) {
	v, s := v1, s1
	if v2 > v {
		v, s = v2, s2
	}
	if v3 > v {
		v, s = v3, s3
	}
	return v, s
}

func gotoh(a, b []byte, sub func(x, y byte) int, open, extend int, local bool) Result {
	n, m := len(a), len(b)
	w := m + 1
	trace := make([]byte, (n+1)*w)
	mPrev, mCur := make([]int, w), make([]int, w)
	xPrev, xCur := make([]int, w), make([]int, w)
	yPrev, yCur := make([]int, w), make([]int, w)

	xPrev[0], yPrev[0] = negInf, negInf
	for j := 1; j <= m; j++ {
		xPrev[j] = negInf
		if local {
			yPrev[j] = negInf
			continue
		}
		mPrev[j] = negInf
		yPrev[j] = open + (j-1)*extend
		src := sY
		if j == 1 {
			src = sM
		}
		trace[j] = pack(sStop, sStop, src)
	}

	best, bi, bj := 0, 0, 0
	for i := 1; i <= n; i++ {
		yCur[0] = negInf
		if local {
			mCur[0], xCur[0] = 0, negInf
		} else {
			mCur[0] = negInf
			xCur[0] = open + (i-1)*extend
			src := sX
			if i == 1 {
				src = sM
			}
			trace[i*w] = pack(sStop, src, sStop)
		}
		for j := 1; j <= m; j++ {
			mv, ms := max3(mPrev[j-1], sM, xPrev[j-1], sX, yPrev[j-1], sY)
			mv += sub(a[i-1], b[j-1])
			if local && mv <= 0 {
				mv, ms = 0, sStop
			}
			xv, xs := max3(mPrev[j]+open, sM, xPrev[j]+extend, sX, yPrev[j]+open, sY)
			yv, ys := max3(mCur[j-1]+open, sM, xCur[j-1]+open, sX, yCur[j-1]+extend, sY)

			mCur[j], xCur[j], yCur[j] = mv, xv, yv
			trace[i*w+j] = pack(ms, xs, ys)
			if local && mv > best {
				best, bi, bj = mv, i, j
			}
		}
		mPrev, mCur = mCur, mPrev
		xPrev, xCur = xCur, xPrev
		yPrev, yCur = yCur, yPrev
	}

	r := Result{}
	i, j := n, m
	state := sM
	if local {
		r.Score = best
		i, j = bi, bj
	} else {
		r.Score, state = max3(mPrev[m], sM, xPrev[m], sX, yPrev[m], sY)
	}
	r.EndA, r.EndB = i, j

	var out builder
	for !(i == 0 && j == 0) && state != sStop {
		t := trace[i*w+j]
		switch state {
		case sM:
			if local && t&3 == sStop {
				state = sStop
				continue
			}
			out.push(a[i-1], b[j-1])
			state = t & 3
			i, j = i-1, j-1
		case sX:
			out.push(a[i-1], Gap)
			state = t >> 2 & 3
			i--
		case sY:
			out.push(Gap, b[j-1])
			state = t >> 4 & 3
			j--
		}
	}
	r.StartA, r.StartB = i, j
	out.finish(&r)
	return r
}
