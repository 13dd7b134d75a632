/*
Copyright 2025 Mirantis IT.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package helpers

import (
	"fmt"

	"github.com/pkg/errors"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	gotesting "k8s.io/client-go/testing"
)

func cleanupFakeClientReactions(fakeClient *gotesting.Fake) {
	fakeClient.ReactionChain = nil
	fakeClient.WatchReactionChain = nil
	fakeClient.ProxyReactionChain = nil
	fakeClient.ClearActions()
}

func addReaction(fakeClient *gotesting.Fake, action, resource string, resourcesMap map[string]runtime.Object, expectedAPIErrorsMap map[string]error) {
	defaultAPIErrors := func(reason string) map[string]error {
		return map[string]error{
			fmt.Sprintf("%s-%s", action, resource): errors.Errorf("failed to %s resource(s) kind of '%s': %s", action, resource, reason),
		}
	}
	apiErrors := defaultAPIErrors("type is not supported in fakeclient fixture")
	if resourcesMap != nil && resourcesMap[resource] != nil {
		if supportedKinds[resource] {
			apiErrors = expectedAPIErrorsMap
		}
	} else {
		apiErrors = defaultAPIErrors("list object is not specified in test")
	}
	switch action {
	case "get":
		addGetReaction(fakeClient, resource, resourcesMap, apiErrors)
	case "list":
		addListReaction(fakeClient, resource, resourcesMap, apiErrors)
	default:
		fmt.Printf("action '%s' is not implemented in fakeclient fixture, reaction for resource kind of '%s' can't be added", action, resource)
	}
}

func checkAPIError(apiErrorMap map[string]error, operation, resourceType, objName string) error {
	if apiErrorMap != nil {
		operationWideErr := fmt.Sprintf("%s-%s", operation, resourceType)
		if apiErrorMap[operationWideErr] != nil {
			return apiErrorMap[operationWideErr]
		}
		if objName != "" {
			operationObjectErr := fmt.Sprintf("%s-%s-%s", operation, resourceType, objName)
			if apiErrorMap[operationObjectErr] != nil {
				return apiErrorMap[operationObjectErr]
			}
		}
	}
	return nil
}

func addListReaction(fakeClient *gotesting.Fake, resource string, resourcesMap map[string]runtime.Object, apiErrorMap map[string]error) {
	fakeClient.AddReactor("list", resource, func(_ gotesting.Action) (handled bool, ret runtime.Object, err error) {
		if err := checkAPIError(apiErrorMap, "list", resource, ""); err != nil {
			return true, nil, err
		}
		return true, resourcesMap[resource].DeepCopyObject(), nil
	})
}

func addGetReaction(fakeClient *gotesting.Fake, resource string, resourcesMap map[string]runtime.Object, apiErrorMap map[string]error) {
	fakeClient.AddReactor("get", resource, func(action gotesting.Action) (handled bool, ret runtime.Object, err error) {
		objName := action.(gotesting.GetActionImpl).Name
		objNamespace := action.(gotesting.GetActionImpl).Namespace
		if err := checkAPIError(apiErrorMap, "get", resource, objName); err != nil {
			return true, nil, err
		}
		objs, err := meta.ExtractList(resourcesMap[resource])
		if err != nil {
			return true, nil, err
		}
		for _, obj := range objs {
			metaObj, err := meta.Accessor(obj)
			if err != nil {
				return true, nil, err
			}
			if metaObj.GetName() == objName {
				if metaObj.GetNamespace() == objNamespace {
					return true, obj.DeepCopyObject(), nil
				}
			}
		}
		return true, nil, apierrors.NewNotFound(schema.GroupResource{
			Group: resourcesMap[resource].GetObjectKind().GroupVersionKind().Group, Resource: resource}, objName)
	})
}
