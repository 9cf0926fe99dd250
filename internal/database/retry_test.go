package database

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetryTransientErrorsEventuallySucceed(t *testing.T) {
	transientErrors := []error{
		errors.New("Control plane request failed: endpoint is disabled"),
		errors.New("dial tcp: lookup db.example.neon.tech: no such host"),
		errors.New("read tcp 10.0.0.1:5432: i/o timeout"),
		errors.New("fetch failed"),
		errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
		errors.New("read tcp 10.0.0.1:5432: connection reset by peer"),
	}

	for _, transient := range transientErrors {
		t.Run(transient.Error(), func(t *testing.T) {
			origSleep := sleep
			var delays []time.Duration
			sleep = func(d time.Duration) { delays = append(delays, d) }
			defer func() { sleep = origSleep }()

			calls := 0
			result, err := RetryWith(func() (string, error) {
				calls++
				if calls < 3 {
					return "", transient
				}
				return "ok", nil
			}, 3, 2*time.Second)

			if err != nil {
				t.Fatalf("expected success after retries, got %v", err)
			}
			if result != "ok" {
				t.Fatalf("expected result from successful attempt, got %q", result)
			}
			if calls != 3 {
				t.Fatalf("expected 3 attempts, got %d", calls)
			}
			want := []time.Duration{2 * time.Second, 4 * time.Second}
			if len(delays) != len(want) {
				t.Fatalf("expected %d delays, got %d", len(want), len(delays))
			}
			for i := range want {
				if delays[i] != want[i] {
					t.Errorf("delay %d: expected %v, got %v", i, want[i], delays[i])
				}
			}
		})
	}
}

func TestRetryDelaysStrictlyIncrease(t *testing.T) {
	origSleep := sleep
	var delays []time.Duration
	sleep = func(d time.Duration) { delays = append(delays, d) }
	defer func() { sleep = origSleep }()

	transient := errors.New("connection refused")
	_, err := RetryWith(func() (int, error) {
		return 0, transient
	}, 4, time.Second)

	if !errors.Is(err, transient) {
		t.Fatalf("expected original error after exhaustion, got %v", err)
	}

	// Exhausted attempts sleep between tries but not after the last one.
	if len(delays) != 3 {
		t.Fatalf("expected 3 delays for 4 attempts, got %d", len(delays))
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] <= delays[i-1] {
			t.Errorf("delay %d (%v) not greater than delay %d (%v)", i, delays[i], i-1, delays[i-1])
		}
		if delays[i] != time.Duration(i+1)*time.Second {
			t.Errorf("delay %d: expected %v, got %v", i, time.Duration(i+1)*time.Second, delays[i])
		}
	}
}

func TestRetryFatalErrorFailsFast(t *testing.T) {
	origSleep := sleep
	slept := false
	sleep = func(time.Duration) { slept = true }
	defer func() { sleep = origSleep }()

	fatal := errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
	calls := 0
	_, err := RetryWith(func() (int, error) {
		calls++
		return 0, fatal
	}, 3, 2*time.Second)

	if calls != 1 {
		t.Fatalf("expected exactly one attempt for fatal error, got %d", calls)
	}
	if !errors.Is(err, fatal) {
		t.Fatalf("expected error returned unchanged, got %v", err)
	}
	if slept {
		t.Error("fatal error on first attempt must not delay")
	}
}

func TestRetryWrappedTransientError(t *testing.T) {
	wrapped := fmt.Errorf("query orders: %w", errors.New("dial tcp: i/o timeout"))
	if !IsTransient(wrapped) {
		t.Error("wrapped transient error should be classified as transient")
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("Control plane request failed"), true},
		{errors.New("no such host"), true},
		{errors.New("connection refused"), true},
		{errors.New("record not found"), false},
		{errors.New("pq: syntax error at or near \"SELEC\""), false},
	}

	for _, tc := range cases {
		if got := IsTransient(tc.err); got != tc.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRetryReturnsFirstSuccess(t *testing.T) {
	calls := 0
	result, err := RetryWith(func() (int, error) {
		calls++
		return 42, nil
	}, 3, 2*time.Second)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 || calls != 1 {
		t.Fatalf("expected immediate success with one call, got result=%d calls=%d", result, calls)
	}
}
