package align

const (
	tStop byte = iota
	tDiag
	tUp   // consume a, gap in b
	tLeft // consume b, gap in a
)

func linear(a, b []byte, sub func(x, y byte) int, gap int, local bool) Result {
	n, m := len(a), len(b)
	w := m + 1
	trace := make([]byte, (n+1)*w)
	prev := make([]int, w)
	cur := make([]int, w)

	for j := 1; j <= m; j++ {
		if !local {
			prev[j] = j * gap
			trace[j] = tLeft
		}
	}

	best, bi, bj := 0, 0, 0
	for i := 1; i <= n; i++ {
		cur[0] = 0
		if !local {
			cur[0] = i * gap
			trace[i*w] = tUp
		}
		for j := 1; j <= m; j++ {
			v, t := prev[j-1]+sub(a[i-1], b[j-1]), tDiag
			if up := prev[j] + gap; up > v {
				v, t = up, tUp
			}
			if left := cur[j-1] + gap; left > v {
				v, t = left, tLeft
			}
			if local && v <= 0 {
				v, t = 0, tStop
			}
			cur[j] = v
			trace[i*w+j] = t
			if local && v > best {
				best, bi, bj = v, i, j
			}
		}
		prev, cur = cur, prev
	}

	r := Result{}
	i, j := n, m
	if local {
		r.Score = best
		i, j = bi, bj
	} else {
		r.Score = prev[m]
	}
	r.EndA, r.EndB = i, j

	var out builder
	for {
		t := trace[i*w+j]
		if (i == 0 && j == 0) || (local && t == tStop) {
			break
		}
		switch t {
		case tDiag:
			out.push(a[i-1], b[j-1])
			i, j = i-1, j-1
		case tUp:
			out.push(a[i-1], Gap)
			i--
		case tLeft:
			out.push(Gap, b[j-1])
			j--
		}
	}
	r.StartA, r.StartB = i, j
	out.finish(&r)
	return r
}
