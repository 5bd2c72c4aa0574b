package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
)

func TestExchangeService_Board(t *testing.T) {
	env := newTestEnv(t)

	board, err := env.exchange.Board(context.Background(), "e3")
	if err != nil {
		t.Fatalf("Board 应成功: %v", err)
	}
	if board.Me.ID != "e3" {
		t.Errorf("身份不符: %s", board.Me.ID)
	}
	if len(board.OpenShifts) != 3 {
		t.Errorf("期望 3 个空缺班次，实际=%d", len(board.OpenShifts))
	}
	if len(board.MyShifts) != 3 {
		t.Errorf("期望 e3 有 3 个班次，实际=%d", len(board.MyShifts))
	}

	if _, err := env.exchange.Board(context.Background(), "e404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestExchangeService_TakeShift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.exchange.TakeShift(ctx, testSID, "e3", "s22")
	if err != nil {
		t.Fatalf("TakeShift 应成功: %v", err)
	}
	if resp.Shift.EmployeeID != "e3" || resp.Shift.Status != model.ShiftScheduled {
		t.Errorf("领取结果不符: %+v", resp.Shift)
	}
	want := "Обмен одобрен автоматически: Дмитрий Сидоров → Приём (" + day(2) + ")"
	if resp.Message != want {
		t.Errorf("期望消息=%s，实际=%s", want, resp.Message)
	}
	if n := env.lastNotification(t, testSID); n.Message != want || n.Kind != model.NotifySuccess {
		t.Errorf("提示不符: %+v", n)
	}

	// 已被领取
	if _, err := env.exchange.TakeShift(ctx, testSID, "e4", "s22"); !errors.Is(err, ErrShiftNotOpen) {
		t.Errorf("期望 ErrShiftNotOpen，实际: %v", err)
	}
	if _, err := env.exchange.TakeShift(ctx, testSID, "e3", "s404"); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("期望 ErrShiftNotFound，实际: %v", err)
	}
}

func TestExchangeService_RequestSwap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	swap, err := env.exchange.RequestSwap(ctx, testSID, "e3", "s3", &dto.SwapShiftRequest{Reason: "Учёба"})
	if err != nil {
		t.Fatalf("RequestSwap 应成功: %v", err)
	}
	if swap.ID == "" || swap.Status != model.SwapPending {
		t.Errorf("换班申请不符: %+v", swap)
	}
	if n := env.lastNotification(t, testSID); n.Message != "Запрос на обмен отправлен менеджеру" || n.Kind != model.NotifyInfo {
		t.Errorf("提示不符: %+v", n)
	}

	if _, err := env.exchange.RequestSwap(ctx, testSID, "e3", "s3", &dto.SwapShiftRequest{}); !errors.Is(err, ErrSwapAlreadyAsked) {
		t.Errorf("期望 ErrSwapAlreadyAsked，实际: %v", err)
	}
	if _, err := env.exchange.RequestSwap(ctx, testSID, "e3", "s1", &dto.SwapShiftRequest{}); !errors.Is(err, ErrShiftNotYours) {
		t.Errorf("期望 ErrShiftNotYours，实际: %v", err)
	}
}

// 多名员工同时领取同一空缺班次，只有一人成功
func TestExchangeService_TakeShift_Concurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	takers := []string{"e1", "e2", "e3", "e4", "e5", "e6", "e8", "e9"}
	start := make(chan struct{})
	var wg sync.WaitGroup
	var mu sync.Mutex
	var winners []string
	for _, id := range takers {
		wg.Add(1)
		go func(employeeID string) {
			defer wg.Done()
			<-start
			_, err := env.exchange.TakeShift(ctx, testSID, employeeID, "s20")
			switch {
			case err == nil:
				mu.Lock()
				winners = append(winners, employeeID)
				mu.Unlock()
			case !errors.Is(err, ErrShiftNotOpen):
				t.Errorf("落败者期望 ErrShiftNotOpen，实际: %v", err)
			}
		}(id)
	}
	close(start)
	wg.Wait()

	if len(winners) != 1 {
		t.Fatalf("期望恰好 1 人领取成功，实际=%v", winners)
	}
	sh, _ := env.repo.Shift.GetByID(ctx, "s20")
	if sh.EmployeeID != winners[0] || sh.Status != model.ShiftScheduled {
		t.Errorf("班次应归属 %s，实际=%+v", winners[0], sh)
	}
}

func TestExchangeService_RequestSwap_ConcurrentDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const n = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := env.exchange.RequestSwap(ctx, testSID, "e3", "s3", &dto.SwapShiftRequest{})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			} else if !errors.Is(err, ErrSwapAlreadyAsked) {
				t.Errorf("期望 ErrSwapAlreadyAsked，实际: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if created != 1 {
		t.Errorf("期望只创建 1 条申请，实际=%d", created)
	}
	if pending, _ := env.repo.SwapRequest.CountPending(ctx); pending != 1 {
		t.Errorf("期望 1 条待处理申请，实际=%d", pending)
	}
}
