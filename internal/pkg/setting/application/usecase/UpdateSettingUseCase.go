package usecase

import (
	"context"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/setting/persistence/repository/port"
)

type UpdateSettingUseCase struct {
	Repo   repository.SettingRepository
	Runner *mutation.Runner
}

func NewUpdateSettingUseCase(repo repository.SettingRepository, runner *mutation.Runner) *UpdateSettingUseCase {
	return &UpdateSettingUseCase{Repo: repo, Runner: runner}
}

func (uc *UpdateSettingUseCase) Execute(ctx context.Context, in setting.UpdateInput, refresh mutation.Refresher) mutation.Outcome {
	in.Key = strings.TrimSpace(in.Key)
	return mutation.Execute(ctx, uc.Runner, mutation.Action[setting.UpdateInput]{
		Name:           "updatePlatformSetting",
		SuccessMessage: "Setting updated successfully",
		FallbackError:  "Failed to update setting",
		Target:         func(in setting.UpdateInput) string { return in.Key },
		Validate:       func(in setting.UpdateInput) error { return in.Validate() },
		Run: func(ctx context.Context, in setting.UpdateInput) (mutation.Result, error) {
			return uc.Repo.Update(ctx, in)
		},
	}, in, refresh)
}
