package demo

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/andreymlv/linkedlist/internal/logger"
	"github.com/andreymlv/linkedlist/list"
)

// Demo fills lists with random values and prints them after every step of the scenario.
type Demo struct {
	cfg    Config
	random *rand.Rand
	log    *logger.Logger
	output io.Writer
}

// NewRandom creates the random source of a demo run.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// New creates a new Demo that writes the rendered lists to output.
func New(cfg Config, random *rand.Rand, log *logger.Logger, output io.Writer) (*Demo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Demo{
		cfg:    cfg,
		random: random,
		log:    log,
		output: output,
	}, nil
}

// Run executes the scenario for the configured variants.
func (d *Demo) Run() error {
	if d.cfg.Variant != VariantSingly {
		if err := d.runDoubly(); err != nil {
			return ierrors.Wrap(err, "doubly linked list demo failed")
		}
	}

	if d.cfg.Variant != VariantDoubly {
		if err := d.runSingly(); err != nil {
			return ierrors.Wrap(err, "singly linked list demo failed")
		}
	}

	return nil
}

func (d *Demo) runDoubly() error {
	first := list.NewDoublyLinkedList[int]()
	second := list.NewDoublyLinkedList[int]()
	for range d.cfg.Length {
		first.PushBack(d.value())
		second.PushFront(d.value())
	}
	d.render(VariantDoubly, "first after initialization", first)
	d.render(VariantDoubly, "second after initialization", second)

	for range d.cfg.Removals {
		for _, target := range []*list.DoublyLinkedList[int]{first, second} {
			value, err := target.Get(d.random.IntN(target.Size()))
			if err != nil {
				return err
			}

			if err = target.Remove(value); err != nil {
				return err
			}
		}
	}
	d.render(VariantDoubly, "first after removal", first)
	d.render(VariantDoubly, "second after removal", second)

	from, to := d.window()
	third, err := first.Copy(from, to)
	if err != nil {
		return err
	}
	d.render(VariantDoubly, fmt.Sprintf("copy of first [%d, %d)", from, to), third)

	fourth, err := first.Slice(from, to)
	if err != nil {
		return err
	}
	d.render(VariantDoubly, fmt.Sprintf("slice of first [%d, %d)", from, to), fourth)

	d.render(VariantDoubly, "first merged with second", first.Merge(second))

	second.MergeWith(third)
	d.render(VariantDoubly, "second merged with copy", second)

	return nil
}

func (d *Demo) runSingly() error {
	first := list.NewSinglyLinkedList[int]()
	second := list.NewSinglyLinkedList[int]()
	for range d.cfg.Length {
		first.AddLast(d.value())
		second.AddFirst(d.value())
	}
	d.render(VariantSingly, "first after initialization", first)
	d.render(VariantSingly, "second after initialization", second)

	for range d.cfg.Removals {
		for _, target := range []*list.SinglyLinkedList[int]{first, second} {
			value, err := target.Get(d.random.IntN(target.GetLength()))
			if err != nil {
				return err
			}

			if !target.DeleteElement(value) {
				return ierrors.Wrapf(list.ErrNoSuchElement, "failed to delete %d", value)
			}
		}
	}
	d.render(VariantSingly, "first after removal", first)
	d.render(VariantSingly, "second after removal", second)

	from, to := d.window()
	third, err := first.Copy(from, to)
	if err != nil {
		return err
	}
	d.render(VariantSingly, fmt.Sprintf("copy of first [%d, %d)", from, to), third)

	fifth, err := first.Copy(0, first.GetLength())
	if err != nil {
		return err
	}
	fifth.MergeByCreatingNewList(second)
	d.render(VariantSingly, "first merged with second", fifth)

	second.MergeWithoutCreatingNewList(third)
	d.render(VariantSingly, "second merged with copy", second)

	return nil
}

func (d *Demo) value() int {
	return d.random.IntN(d.cfg.MaxValue)
}

// window draws the bounds of the copied range.
func (d *Demo) window() (from, to int) {
	from, to = d.random.IntN(d.cfg.SliceBound), d.random.IntN(d.cfg.SliceBound)

	return min(from, to), max(from, to)
}

func (d *Demo) render(variant string, label string, values interface {
	fmt.Stringer
	Values() []int
},
) {
	fmt.Fprintf(d.output, "%s %s: %s\n", variant, label, values)

	if elements := values.Values(); len(elements) > 0 {
		d.log.Debugw(label, "variant", variant, "size", len(elements), "max", lo.Max(elements...), "sum", lo.Sum(elements...))
	}
}
