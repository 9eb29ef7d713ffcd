package curves

import (
	"context"
	"math/big"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// ScalarMul computes k * p by double-and-add over the bits of |k|.
// A negative k multiplies -p. The chain is sequential.
func (p *Point[T]) ScalarMul(k *big.Int) (*Point[T], error) {
	if k == nil {
		return nil, ecc.NewOpError("curves.ScalarMul", ecc.ErrInvalidParameters, "nil scalar")
	}

	base := p
	if k.Sign() < 0 {
		base = p.Neg()
	}
	n := new(big.Int).Abs(k)

	result := p.curve.Infinity()
	var err error
	for i := n.BitLen() - 1; i >= 0; i-- {
		if result, err = result.Double(); err != nil {
			return nil, err
		}
		if n.Bit(i) == 1 {
			if result, err = result.Add(base); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// ScalarMulInt64 is ScalarMul for small scalars.
func (p *Point[T]) ScalarMulInt64(k int64) (*Point[T], error) {
	return p.ScalarMul(big.NewInt(k))
}

// ScalarMulJob is one independent scalar multiplication.
type ScalarMulJob[T ecc.Coordinate[T]] struct {
	Point  *Point[T]
	Scalar *big.Int
}

// ScalarMulBatch runs independent scalar multiplications concurrently, at
// most limit at a time (GOMAXPROCS when limit <= 0). Results are returned in
// job order. The first failure, or cancellation of ctx, aborts the batch.
func ScalarMulBatch[T ecc.Coordinate[T]](ctx context.Context, jobs []ScalarMulJob[T], limit int) ([]*Point[T], error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	log.Debugf("scalar multiplication batch: %d jobs, limit %d", len(jobs), limit)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]*Point[T], len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return ecc.NewOpError("curves.ScalarMulBatch", err, "job %d", i)
			}
			if job.Point == nil {
				return ecc.NewOpError("curves.ScalarMulBatch", ecc.ErrInvalidParameters, "job %d: nil point", i)
			}
			r, err := job.Point.ScalarMul(job.Scalar)
			if err != nil {
				return errors.Wrapf(err, "job %d", i)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Debugf("scalar multiplication batch failed: %s", err)
		return nil, err
	}
	log.Debugf("scalar multiplication batch done: %d results", len(results))
	return results, nil
}
