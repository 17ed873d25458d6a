package model

import (
	"strconv"
	"time"

	"github.com/taskhive/backend/internal/entity"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:                      user.ID,
		TelegramID:              strconv.FormatInt(user.TelegramID, 10),
		Name:                    user.Name,
		Username:                user.Username,
		AvatarURL:               user.AvatarURL,
		Balance:                 user.Balance,
		Points:                  user.Points,
		ProfileLink:             user.ProfileLink,
		OnboardingBonusReceived: user.OnboardingBonusReceived,
		IsBlocked:               user.IsBlocked,
		CreatedAt:               formatTime(user.CreatedAt),
		LastLoginAt:             formatTime(user.LastLoginAt),
	}
}

func ConvertCategory(category *entity.Category) Category {
	if category == nil {
		return Category{}
	}

	return Category{
		ID:                  category.ID,
		Name:                category.Name,
		Icon:                category.Icon,
		RewardPerCompletion: category.RewardPerCompletion,
		CostPerCompletion:   category.CostPerCompletion,
	}
}

// ConvertTask maps a task with its preloaded associations. Platform tasks
// have no creator row and are presented under the system name.
func ConvertTask(task *entity.Task) Task {
	if task == nil {
		return Task{}
	}

	creatorName := "System"
	if task.CreatorID.Valid {
		creatorName = task.Creator.Name
	}

	return Task{
		ID:             task.ID,
		Title:          task.Title,
		Link:           task.Link,
		Category:       ConvertCategory(&task.Category),
		CreatorName:    creatorName,
		Quantity:       task.Quantity,
		CompletedCount: task.CompletedCount,
		Reward:         task.Reward,
		Status:         string(task.Status),
		CreatedAt:      formatTime(task.CreatedAt),
	}
}

func ConvertTaskCompletion(completion *entity.TaskCompletion) TaskCompletion {
	if completion == nil {
		return TaskCompletion{}
	}

	return TaskCompletion{
		ID:        completion.ID,
		Task:      ConvertTask(&completion.Task),
		Status:    string(completion.Status),
		CreatedAt: formatTime(completion.CreatedAt),
	}
}

func ConvertTransaction(transaction *entity.Transaction, user *entity.User) Transaction {
	if transaction == nil {
		return Transaction{}
	}

	resp := Transaction{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Method:      transaction.Method,
		ReferenceID: transaction.ReferenceID,
		Status:      string(transaction.Status),
		Reason:      transaction.Reason,
		CreatedAt:   formatTime(transaction.CreatedAt),
	}

	if user != nil {
		resp.User = ConvertUser(user)
	}

	return resp
}

func ConvertReport(report *entity.Report, accused *entity.User) Report {
	if report == nil {
		return Report{}
	}

	resp := Report{
		ID:              report.ID,
		Reporter:        ConvertUser(&report.Reporter),
		AccusedUsername: report.AccusedUsername,
		TaskLink:        report.TaskLink,
		ProfileLink:     report.ProfileLink,
		Status:          string(report.Status),
		Reason:          report.Reason,
		CreatedAt:       formatTime(report.CreatedAt),
	}

	if accused != nil {
		accusedUser := ConvertUser(accused)
		resp.AccusedUser = &accusedUser
	}

	return resp
}

func ConvertRule(rule *entity.Rule) Rule {
	if rule == nil {
		return Rule{}
	}

	return Rule{
		ID:          rule.ID,
		Index:       rule.Index,
		Title:       rule.Title,
		Description: rule.Description,
		Category:    rule.Category,
	}
}

func ConvertAnnouncement(announcement *entity.Announcement) Announcement {
	if announcement == nil {
		return Announcement{}
	}

	return Announcement{
		ID:          announcement.ID,
		Title:       announcement.Title,
		Description: announcement.Description,
		Icon:        announcement.Icon,
		URL:         announcement.URL,
		IsActive:    announcement.IsActive,
		CreatedAt:   formatTime(announcement.CreatedAt),
	}
}

func ConvertSetting(setting *entity.Setting) Setting {
	if setting == nil {
		return Setting{}
	}

	return Setting{
		Maintenance:        setting.MaintenanceMode,
		MaintenanceMessage: setting.MaintenanceMessage,
		OnboardingBonus:    setting.OnboardingBonus,
		PointName:          setting.PointName,
		CommunityLink:      setting.CommunityLink,
	}
}

func ConvertAdmin(admin *entity.Admin) Admin {
	if admin == nil {
		return Admin{}
	}

	return Admin{
		ID:          admin.ID,
		Username:    admin.Username,
		Role:        string(admin.Role),
		LastLoginAt: formatTime(admin.LastLoginAt),
	}
}

func ConvertAdminLog(log *entity.AdminLog) AdminLog {
	if log == nil {
		return AdminLog{}
	}

	return AdminLog{
		ID:        log.ID,
		Admin:     ConvertAdmin(&log.Admin),
		Action:    log.Action,
		Target:    log.Target,
		Detail:    log.Detail,
		CreatedAt: formatTime(log.CreatedAt),
	}
}
