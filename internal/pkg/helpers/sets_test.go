package helpers

import (
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	cases := []struct {
		in       []int64
		expected []int64
	}{
		{[]int64{1, 2, 2, 3, 1}, []int64{1, 2, 3}},
		{[]int64{5}, []int64{5}},
		{[]int64{}, []int64{}},
		{[]int64{7, 7, 7}, []int64{7}},
	}
	for _, c := range cases {
		if got := Dedupe(c.in); !reflect.DeepEqual(got, c.expected) {
			t.Fatalf("Dedupe(%v) expected %v got %v", c.in, c.expected, got)
		}
	}
}

func TestDiff(t *testing.T) {
	cases := []struct {
		a        []int64
		b        []int64
		expected []int64
	}{
		{[]int64{1, 2, 3}, []int64{2}, []int64{1, 3}},
		{[]int64{1, 2}, []int64{1, 2}, nil},
		{[]int64{1, 2}, nil, []int64{1, 2}},
		{nil, []int64{1}, nil},
	}
	for _, c := range cases {
		if got := Diff(c.a, c.b); !reflect.DeepEqual(got, c.expected) {
			t.Fatalf("Diff(%v, %v) expected %v got %v", c.a, c.b, c.expected, got)
		}
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		a        []int64
		b        []int64
		expected []int64
	}{
		{[]int64{1, 2, 3}, []int64{3, 1}, []int64{1, 3}},
		{[]int64{1, 2}, []int64{3}, nil},
		{nil, []int64{1}, nil},
	}
	for _, c := range cases {
		if got := Intersect(c.a, c.b); !reflect.DeepEqual(got, c.expected) {
			t.Fatalf("Intersect(%v, %v) expected %v got %v", c.a, c.b, c.expected, got)
		}
	}
}

func TestContains(t *testing.T) {
	ids := []int64{4, 8, 15}
	if !Contains(ids, 8) {
		t.Fatalf("expected Contains to find 8 in %v", ids)
	}
	if Contains(ids, 16) {
		t.Fatalf("did not expect Contains to find 16 in %v", ids)
	}
	if Contains(nil, 1) {
		t.Fatalf("did not expect Contains to find anything in nil slice")
	}
}
