package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	revenueModel "skyouth_backend/internals/features/finance/revenues/model"
	"skyouth_backend/internals/features/finance/revenues/repository"
	"skyouth_backend/internals/features/finance/revenues/service"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/apperror"
)

type revenueLister interface {
	List(ctx context.Context, f repository.ListFilter, p helper.Params) ([]revenueModel.Revenue, int64, error)
}

type gcashSyncer interface {
	SyncGcash(ctx context.Context) (service.SyncResult, error)
}

type RevenueController struct {
	Revenues   revenueLister
	Reconciler gcashSyncer
}

func NewRevenueController(revenues revenueLister, reconciler gcashSyncer) *RevenueController {
	return &RevenueController{Revenues: revenues, Reconciler: reconciler}
}

/* =========================================================
   SYNC
   POST /api/a/revenues/sync-gcash
========================================================= */
func (ctl *RevenueController) SyncGcash(c *fiber.Ctx) error {
	res, err := ctl.Reconciler.SyncGcash(c.UserContext())
	if err != nil {
		// hitungan parsial tetap dikirim supaya admin tahu apa yang sudah tercatat
		return helper.JsonAppErrorWithData(c, err, res)
	}
	return helper.JsonOK(c, "GCash revenue sync completed", res)
}

/* =========================================================
   LIST
   GET /api/a/revenues?source=GCASH&status=&submission_id=&program_id=&page=&per_page=
========================================================= */
func (ctl *RevenueController) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		Source: c.Query("source"),
		Status: c.Query("status"),
	}
	if s := strings.TrimSpace(c.Query("submission_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "submission_id tidak valid")
		}
		filter.SubmissionID = &id
	}
	if s := strings.TrimSpace(c.Query("program_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "program_id tidak valid")
		}
		filter.ProgramID = &id
	}

	p := helper.ParseFiber(c, "date", "desc", helper.AdminOpts)
	items, total, err := ctl.Revenues.List(c.UserContext(), filter, p)
	if err != nil {
		return helper.JsonAppError(c, apperror.Storage("list revenues", err))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}
