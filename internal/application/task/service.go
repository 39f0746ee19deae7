package task

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskService handles task business operations and reminder firing
type TaskService struct {
	taskRepo   task.Repository
	dispatcher notification.Dispatcher
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo task.Repository, dispatcher notification.Dispatcher) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		dispatcher: dispatcher,
	}
}

// Create creates a task
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	t, err := task.New(req.Content, task.Type(req.Type))
	if err != nil {
		return nil, err
	}
	t.SetClient(req.ClientID)
	t.SetExecutionDate(req.ExecutionDate)

	if req.ReminderDate != nil {
		frequency := task.FrequencyOnce
		if req.ReminderFrequency != "" {
			frequency = task.ReminderFrequency(req.ReminderFrequency)
		}
		if err := t.SetReminder(*req.ReminderDate, frequency); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTaskResponse(t)
	return &response, nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTaskResponse(t)
	return &response, nil
}

// List retrieves a page of tasks
func (s *TaskService) List(ctx context.Context, filter TaskListFilter) (*shared.Paginated[TaskResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Type != "" {
		f.Filters["type"] = filter.Type
	}
	if filter.Completed != nil {
		f.Filters["completed"] = *filter.Completed
	}
	if filter.ClientID != nil {
		f.Filters["client_id"] = *filter.ClientID
	}

	tasks, err := s.taskRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.taskRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, ToTaskResponse(&tasks[i]))
	}

	result := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &result, nil
}

// Update applies a partial update to a task
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req UpdateTaskRequest) (*TaskResponse, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if *req.Content == "" {
			return nil, shared.NewDomainError("INVALID_CONTENT", "Task content cannot be empty")
		}
		t.Content = *req.Content
	}
	if req.Type != nil {
		if !task.ValidType(task.Type(*req.Type)) {
			return nil, shared.NewDomainError("INVALID_TYPE", "Unknown task type")
		}
		t.Type = task.Type(*req.Type)
	}
	if req.ClearClient {
		t.SetClient(nil)
	} else if req.ClientID != nil {
		t.SetClient(req.ClientID)
	}
	if req.ExecutionDate != nil {
		t.SetExecutionDate(req.ExecutionDate)
	}
	if req.ClearReminder {
		t.ClearReminder()
	} else if req.ReminderDate != nil {
		frequency := t.ReminderFrequency
		if req.ReminderFrequency != nil {
			frequency = task.ReminderFrequency(*req.ReminderFrequency)
		}
		if err := t.SetReminder(*req.ReminderDate, frequency); err != nil {
			return nil, err
		}
	} else if req.ReminderFrequency != nil && t.ReminderDate != nil {
		if err := t.SetReminder(*t.ReminderDate, task.ReminderFrequency(*req.ReminderFrequency)); err != nil {
			return nil, err
		}
	}
	t.UpdatedAt = time.Now()

	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTaskResponse(t)
	return &response, nil
}

// ToggleCompleted flips the completed flag. Completing a trashed task also
// restores it.
func (s *TaskService) ToggleCompleted(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.ToggleCompleted()

	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTaskResponse(t)
	return &response, nil
}

// Delete moves a task to the trash. The completed flag is not touched.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	t.MarkDeleted(time.Now())
	return s.taskRepo.Save(ctx, t)
}

// FireDueReminders fires every reminder due at the given instant: a
// notification per task, then the reminder is advanced (or cleared for
// one-shots) so the next poll does not re-raise it. It returns the number
// of reminders fired.
func (s *TaskService) FireDueReminders(ctx context.Context, now time.Time) (int, error) {
	due, err := s.taskRepo.FindDueReminders(ctx, now)
	if err != nil {
		return 0, err
	}

	fired := 0
	for i := range due {
		t := &due[i]
		if !t.ReminderDue(now) {
			continue
		}

		s.report(ctx, t)

		t.AdvanceReminder(now)
		if err := s.taskRepo.Save(ctx, t); err != nil {
			// Stop at the first persistence failure; anything already
			// advanced stays advanced.
			return fired, err
		}
		fired++
	}
	return fired, nil
}

func (s *TaskService) report(ctx context.Context, t *task.Task) {
	if s.dispatcher == nil {
		return
	}
	n, err := notification.New(notification.KindReminder, "Recordatorio", t.Content)
	if err != nil {
		return
	}
	n.SetRef("task", t.ID)
	s.dispatcher.Dispatch(ctx, n)
}
