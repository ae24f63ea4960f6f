package controllers

import (
	"annuaire-service/internal/app/contracts"
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/exceptions"
	"annuaire-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SearchController struct {
	Log                     *zap.Logger
	SearchUsecase           contracts.SearchUsecase
	RequestTimeoutInSeconds int
}

func NewSearchController(logger *zap.Logger, searchUsecase contracts.SearchUsecase, requestTimeoutInSeconds int) *SearchController {
	return &SearchController{
		Log:                     logger,
		SearchUsecase:           searchUsecase,
		RequestTimeoutInSeconds: requestTimeoutInSeconds,
	}
}

func (ctrl *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	searchRequest := utils.BuildSearchRequest(r)
	if err := utils.ValidateStruct(searchRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.SearchUsecase.Search(ctx, searchRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchSuccessMessage, response)
}
