package engine

// ExecuteComplex runs a KindComplex1D plan. in and out must either alias
// exactly or not overlap, and must satisfy the shape the plan was built
// for; the caller (the dispatch layer) has already validated the kind
// and direction, so no checks are repeated here.
func (p *Plan) ExecuteComplex(in, out []complex128) {
	if p.kind != KindComplex1D {
		panic("engine: plan kind mismatch - complex execute on a real plan")
	}

	n := p.n

	for b := 0; b < p.howmany; b++ {
		src := in[b*p.dist:]
		dst := out[b*p.dist:]

		if p.stride == 1 {
			if p.forward {
				p.fft.forward(dst[:n], src[:n])
			} else {
				p.fft.backward(dst[:n], src[:n])
			}

			continue
		}

		buf := p.buf[:n]
		for j := 0; j < n; j++ {
			buf[j] = src[j*p.stride]
		}

		if p.forward {
			p.fft.forward(buf, buf)
		} else {
			p.fft.backward(buf, buf)
		}

		for j := 0; j < n; j++ {
			dst[j*p.stride] = buf[j]
		}
	}
}

// ExecuteReal runs a KindReal1D or KindReal2D plan. The complex side is
// interleaved re/im float64 pairs. Each batch (or row/column) is staged
// through the plan's own buffer, so exact in-place aliasing is safe.
func (p *Plan) ExecuteReal(in, out []float64) {
	switch p.kind {
	case KindReal1D:
		p.executeReal1D(in, out)
	case KindReal2D:
		p.executeReal2D(in, out)
	default:
		panic("engine: plan kind mismatch - real execute on a complex plan")
	}
}

func (p *Plan) executeReal1D(in, out []float64) {
	n := p.n
	half := n/2 + 1
	buf := p.buf[:n]

	for b := 0; b < p.howmany; b++ {
		rb := b * p.realDist
		cb := b * p.cplxDist * 2

		if p.forward {
			for j := 0; j < n; j++ {
				buf[j] = complex(in[rb+j], 0)
			}

			p.fft.forward(buf, buf)

			for k := 0; k < half; k++ {
				out[cb+2*k] = real(buf[k])
				out[cb+2*k+1] = imag(buf[k])
			}

			continue
		}

		for k := 0; k < half; k++ {
			buf[k] = complex(in[cb+2*k], in[cb+2*k+1])
		}

		// The upper half-spectrum follows from conjugate symmetry.
		for k := half; k < n; k++ {
			buf[k] = conj(buf[n-k])
		}

		p.fft.backward(buf, buf)

		for j := 0; j < n; j++ {
			out[rb+j] = real(buf[j])
		}
	}
}

func (p *Plan) executeReal2D(in, out []float64) {
	nx, ny := p.nx, p.ny
	halfY := ny/2 + 1
	rowFloats := halfY * 2
	buf := p.buf[:ny]
	colBuf := p.colBuf[:nx]

	if p.forward {
		// Rows: real → half-spectrum, written into out.
		for r := 0; r < nx; r++ {
			base := r * rowFloats

			for j := 0; j < ny; j++ {
				buf[j] = complex(in[base+j], 0)
			}

			p.fft.forward(buf, buf)

			for k := 0; k < halfY; k++ {
				out[base+2*k] = real(buf[k])
				out[base+2*k+1] = imag(buf[k])
			}
		}

		// Columns: complex transform down each of the halfY bins.
		for c := 0; c < halfY; c++ {
			for r := 0; r < nx; r++ {
				base := r*rowFloats + 2*c
				colBuf[r] = complex(out[base], out[base+1])
			}

			p.col.forward(colBuf, colBuf)

			for r := 0; r < nx; r++ {
				base := r*rowFloats + 2*c
				out[base] = real(colBuf[r])
				out[base+1] = imag(colBuf[r])
			}
		}

		return
	}

	// Backward: undo the columns first, staging into out so the row
	// pass below reads from one place whether or not in aliases out.
	for c := 0; c < halfY; c++ {
		for r := 0; r < nx; r++ {
			base := r*rowFloats + 2*c
			colBuf[r] = complex(in[base], in[base+1])
		}

		p.col.backward(colBuf, colBuf)

		for r := 0; r < nx; r++ {
			base := r*rowFloats + 2*c
			out[base] = real(colBuf[r])
			out[base+1] = imag(colBuf[r])
		}
	}

	for r := 0; r < nx; r++ {
		base := r * rowFloats

		for k := 0; k < halfY; k++ {
			buf[k] = complex(out[base+2*k], out[base+2*k+1])
		}

		for k := halfY; k < ny; k++ {
			buf[k] = conj(buf[ny-k])
		}

		p.fft.backward(buf, buf)

		for j := 0; j < ny; j++ {
			out[base+j] = real(buf[j])
		}
	}
}
